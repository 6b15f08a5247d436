package attacks

import (
	"fmt"

	"github.com/danielenielsen/chess-engine-two/internal/board"
)

// SquareCount caches the decoded squares of every bitboard with 1..max bits
// set, a shortcut for low-population masks.
type SquareCount struct {
	max       int
	positions map[board.Bitboard][]board.Square
}

// NewSquareCount builds the cache for populations 1 through maxBits.
func NewSquareCount(maxBits int) *SquareCount {
	if maxBits < 1 {
		panic(fmt.Sprintf("attacks: square-count max %d, want >= 1", maxBits))
	}

	sc := &SquareCount{max: maxBits, positions: make(map[board.Bitboard][]board.Square)}
	for n := 1; n <= maxBits; n++ {
		for _, bb := range board.ChooseN(n) {
			sc.positions[bb] = bb.Squares()
		}
	}
	return sc
}

// Positions returns the cached ascending squares of bb.
func (sc *SquareCount) Positions(bb board.Bitboard) ([]board.Square, bool) {
	sq, ok := sc.positions[bb]
	return sq, ok
}

// Decode returns the squares of bb, from the cache when possible.
func (sc *SquareCount) Decode(bb board.Bitboard) []board.Square {
	if sq, ok := sc.positions[bb]; ok {
		return sq
	}
	return bb.Squares()
}

// Len returns the number of cached bitboards.
func (sc *SquareCount) Len() int {
	return len(sc.positions)
}

// Max returns the largest cached population.
func (sc *SquareCount) Max() int {
	return sc.max
}
