package attacks

import (
	"testing"

	"github.com/danielenielsen/chess-engine-two/internal/board"
)

func TestGenerateEmptyBoard(t *testing.T) {
	tests := []struct {
		name string
		pt   board.PieceType
		c    board.Color
		sq   board.Square
		want board.Bitboard
	}{
		{"white pawn on 0", board.Pawn, board.White, 0, 512},
		{"black pawn on 0", board.Pawn, board.Black, 0, 0},
		{"white pawn on 63", board.Pawn, board.White, 63, 0},
		{"black pawn on 63", board.Pawn, board.Black, 63, 18_014_398_509_481_984},
		{"white pawn on 20", board.Pawn, board.White, 20, 671_088_640},
		{"black pawn on 20", board.Pawn, board.Black, 20, 10_240},
		{"rook on 0", board.Rook, board.White, 0, 72_340_172_838_076_926},
		{"rook on 7", board.Rook, board.Black, 7, 9_259_542_123_273_814_143},
		{"rook on 25", board.Rook, board.White, 25, 144_680_349_887_234_562},
		{"bishop on 0", board.Bishop, board.White, 0, 9_241_421_688_590_303_744},
		{"bishop on 63", board.Bishop, board.Black, 63, 18_049_651_735_527_937},
		{"knight on 0", board.Knight, board.White, 0, 132_096},
		{"knight on 0 black", board.Knight, board.Black, 0, 132_096},
		{"knight on 28", board.Knight, board.White, 28, 44_272_527_353_856},
		{"king on 0", board.King, board.White, 0, 770},
		{"king on 14", board.King, board.Black, 14, 14_721_248},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, m := range Modes {
				if got := Generate(tc.pt, tc.c, tc.sq, 0, m); got != tc.want {
					t.Errorf("Generate(%s, %s, %d, 0, %s) = %d, want %d", tc.pt, tc.c, tc.sq, m, got, tc.want)
				}
			}
		})
	}
}

func TestGenerateWithBlockers(t *testing.T) {
	tests := []struct {
		name string
		pt   board.PieceType
		c    board.Color
		sq   board.Square
		occ  board.Bitboard
		mode Mode
		want board.Bitboard
	}{
		{"white pawn threat", board.Pawn, board.White, 20, 134_217_728, Threat, 671_088_640},
		{"black pawn threat", board.Pawn, board.Black, 20, 8_192, Threat, 10_240},
		{"white pawn move", board.Pawn, board.White, 20, 134_217_728, Move, 536_870_912},
		{"black pawn move", board.Pawn, board.Black, 20, 8_192, Move, 2_048},
		{"rook threat 28", board.Rook, board.White, 28, 17_592_253_153_280, Threat, 17_664_865_996_816},
		{"rook threat 4", board.Rook, board.White, 4, 4_503_599_627_370_497, Threat, 4_521_260_802_380_015},
		{"rook move 28", board.Rook, board.Black, 28, 1_152_921_504_606_851_072, Move, 4_521_264_543_694_848},
		{"rook move 4", board.Rook, board.Black, 4, 1_152_921_504_606_847_012, Move, 4_521_260_802_379_784},
		{"bishop threat 12", board.Bishop, board.White, 12, 67_108_864, Threat, 550_899_286_056},
		{"bishop threat 14", board.Bishop, board.White, 14, 34_368_126_976, Threat, 34_638_659_744},
		{"bishop move 12", board.Bishop, board.White, 12, 1_073_741_824, Move, 1_108_171_292_712},
		{"bishop move 14", board.Bishop, board.White, 14, 8_388_736, Move, 72_624_976_668_131_360},
		{"knight threat 0", board.Knight, board.White, 0, 131_072, Threat, 132_096},
		{"knight threat 28", board.Knight, board.White, 28, 43_980_469_315_584, Threat, 44_272_527_353_856},
		{"knight move 0", board.Knight, board.White, 0, 131_072, Move, 1_024},
		{"knight move 28", board.Knight, board.White, 28, 35_184_372_090_880, Move, 9_088_155_262_976},
		{"king threat 0", board.King, board.White, 0, 2, Threat, 770},
		{"king threat 14", board.King, board.White, 14, 10_526_720, Threat, 14_721_248},
		{"king move 0", board.King, board.White, 0, 2, Move, 768},
		{"king move 14", board.King, board.White, 14, 10_485_760, Move, 4_235_488},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Generate(tc.pt, tc.c, tc.sq, tc.occ, tc.mode); got != tc.want {
				t.Errorf("Generate(%s, %s, %d, %d, %s) = %d, want %d", tc.pt, tc.c, tc.sq, tc.occ, tc.mode, got, tc.want)
			}
		})
	}
}

func TestGenerateQueenIsRookPlusBishop(t *testing.T) {
	occ := board.Bitboard(0x0042_0010_2400_8100)
	for sq := board.Square(0); sq < board.NoSquare; sq++ {
		for _, m := range Modes {
			want := Generate(board.Rook, board.White, sq, occ, m) | Generate(board.Bishop, board.White, sq, occ, m)
			if got := Generate(board.Queen, board.White, sq, occ, m); got != want {
				t.Errorf("queen %s on %d = %#x, want %#x", m, sq, uint64(got), uint64(want))
			}
		}
	}
}

func TestGenerateNeverIncludesOrigin(t *testing.T) {
	for _, pt := range []board.PieceType{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King} {
		for _, c := range board.Colors {
			for sq := board.Square(0); sq < board.NoSquare; sq++ {
				if Footprint(pt, c, sq).IsSet(sq) {
					t.Errorf("%s %s footprint on %d contains its own square", c, pt, sq)
				}
			}
		}
	}
}

func TestGenerateInvalidSquarePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Generate on square 64 did not panic")
		}
	}()
	Generate(board.Rook, board.White, board.NoSquare, 0, Threat)
}

func TestCatalog(t *testing.T) {
	tests := []struct {
		pt      board.PieceType
		rays    int
		longest int
	}{
		{board.Pawn, 2, 1},
		{board.Knight, 8, 1},
		{board.Bishop, 4, 7},
		{board.Rook, 4, 7},
		{board.Queen, 8, 7},
		{board.King, 8, 1},
	}

	for _, tc := range tests {
		rays := Catalog(tc.pt, board.White)
		if len(rays) != tc.rays {
			t.Errorf("Catalog(%s) has %d rays, want %d", tc.pt, len(rays), tc.rays)
		}
		for _, r := range rays {
			if len(r) != tc.longest {
				t.Errorf("Catalog(%s) ray %v has %d steps, want %d", tc.pt, r, len(r), tc.longest)
			}
		}
	}

	if w, b := Catalog(board.Pawn, board.White), Catalog(board.Pawn, board.Black); w[0][0].DRow != 1 || b[0][0].DRow != -1 {
		t.Errorf("pawn catalogs advance the wrong way: white %v, black %v", w, b)
	}
}

func TestCatalogUnknownPiecePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Catalog(NoPieceType) did not panic")
		}
	}()
	Catalog(board.NoPieceType, board.White)
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("capture"); ok {
		t.Error(`ParseMode("capture") should fail`)
	}
}
