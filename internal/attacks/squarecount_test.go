package attacks

import (
	"testing"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/danielenielsen/chess-engine-two/internal/board"
)

func TestSquareCount(t *testing.T) {
	sc := NewSquareCount(DefaultSquareCountMax)

	if sc.Len() != 64+2016+41664 {
		t.Errorf("Len() = %d, want %d", sc.Len(), 64+2016+41664)
	}

	got, ok := sc.Positions(1<<5 | 1<<8 | 1<<55)
	if !ok || !slices.Equal(got, []board.Square{5, 8, 55}) {
		t.Errorf("Positions(5, 8, 55) = %v, %v", got, ok)
	}

	got, ok = sc.Positions(1<<0 | 1<<15)
	if !ok || !slices.Equal(got, []board.Square{0, 15}) {
		t.Errorf("Positions(0, 15) = %v, %v", got, ok)
	}

	if _, ok := sc.Positions(0); ok {
		t.Error("Positions(0) should not be cached")
	}
	if _, ok := sc.Positions(0xF); ok {
		t.Error("Positions of a 4-bit board should not be cached")
	}
}

func TestSquareCountMatchesDecode(t *testing.T) {
	sc := NewSquareCount(2)
	keys := maps.Keys(sc.positions)
	slices.Sort(keys)
	for _, bb := range keys {
		got, _ := sc.Positions(bb)
		if !slices.Equal(got, bb.Squares()) {
			t.Fatalf("Positions(%#x) = %v, want %v", uint64(bb), got, bb.Squares())
		}
	}

	wide := board.Bitboard(0xFF00)
	if got := sc.Decode(wide); !slices.Equal(got, wide.Squares()) {
		t.Errorf("Decode fallback = %v, want %v", got, wide.Squares())
	}
}
