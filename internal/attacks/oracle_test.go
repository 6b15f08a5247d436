package attacks

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/danielenielsen/chess-engine-two/internal/board"
)

// TestSlidersAgainstDragontooth cross-checks the rook and bishop threat
// tables against dragontoothmg's magic bitboards, an independent
// implementation that also reports the blocking square.
func TestSlidersAgainstDragontooth(t *testing.T) {
	tables := fullTables(t)

	oracles := []struct {
		pt     board.PieceType
		attack func(uint8, uint64) uint64
	}{
		{board.Rook, dragontoothmg.CalculateRookMoveBitboard},
		{board.Bishop, dragontoothmg.CalculateBishopMoveBitboard},
	}

	for _, o := range oracles {
		tbl := tables.Table(o.pt, Threat)
		for sq := board.Square(0); sq < board.NoSquare; sq++ {
			subsets := board.Subsets(tbl.Footprint(board.White, sq))
			for i := 0; i < len(subsets); i += 5 {
				occ := subsets[i]
				want := board.Bitboard(o.attack(uint8(sq), uint64(occ)))
				for _, c := range board.Colors {
					if got := tbl.Lookup(c, sq, occ); got != want {
						t.Fatalf("%s threat (%s, %d, %#x) = %#x, dragontoothmg says %#x",
							o.pt, c, sq, uint64(occ), uint64(got), uint64(want))
					}
				}
			}
		}
	}
}
