package board

import (
	"strings"
	"testing"

	"golang.org/x/exp/slices"
)

func TestSquares(t *testing.T) {
	bb := Bitboard(1<<10 | 1<<5 | 1<<60)
	got := bb.Squares()
	want := []Square{5, 10, 60}
	if !slices.Equal(got, want) {
		t.Errorf("Squares() = %v, want %v", got, want)
	}

	if got := Empty.Squares(); len(got) != 0 {
		t.Errorf("Empty.Squares() = %v, want none", got)
	}
}

func TestLSBAndMSB(t *testing.T) {
	bb := Bitboard(1<<3 | 1<<41)
	if bb.LSB() != 3 {
		t.Errorf("LSB() = %d, want 3", bb.LSB())
	}
	if bb.MSB() != 41 {
		t.Errorf("MSB() = %d, want 41", bb.MSB())
	}
	if Empty.LSB() != NoSquare || Empty.MSB() != NoSquare {
		t.Error("LSB/MSB of an empty bitboard should be NoSquare")
	}
}

func TestColumnMasks(t *testing.T) {
	for col := 0; col < Width; col++ {
		for row := 0; row < Width; row++ {
			if !ColMask[col].IsSet(NewSquare(col, row)) {
				t.Errorf("ColMask[%d] missing row %d", col, row)
			}
		}
		if ColMask[col].PopCount() != Width {
			t.Errorf("ColMask[%d] has %d bits", col, ColMask[col].PopCount())
		}
	}
}

func TestBitboardString(t *testing.T) {
	s := SquareBB(7).String()
	lines := strings.Split(s, "\n")
	// Square 7 is a1: bottom row, leftmost column.
	if !strings.HasPrefix(lines[7], "1 1 . ") {
		t.Errorf("unexpected bottom row %q", lines[7])
	}
	if lines[8] != "  a b c d e f g h" {
		t.Errorf("unexpected file legend %q", lines[8])
	}
}
