package board

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// MaxSubsetBits bounds the population count Subsets accepts. Rook footprints
// hold 14 bits, so anything past this is a caller bug.
const MaxSubsetBits = 24

// Subsets returns every subset of mask, 2^popcount(mask) bitboards in total,
// starting with 0. Each step doubles the list built so far by adding the next
// highest bit, so results are distinct by construction.
func Subsets(mask Bitboard) []Bitboard {
	n := mask.PopCount()
	if n > MaxSubsetBits {
		panic(fmt.Sprintf("board: refusing to enumerate 2^%d subsets of %#x", n, uint64(mask)))
	}
	out := make([]Bitboard, 0, 1<<n)
	return appendSubsets(out, mask)
}

func appendSubsets(out []Bitboard, mask Bitboard) []Bitboard {
	if mask == 0 {
		return append(out, 0)
	}

	high := SquareBB(mask.MSB())
	out = appendSubsets(out, mask-high)

	for _, sub := range out {
		out = append(out, sub+high)
	}
	return out
}

// ChooseN returns every bitboard with exactly n of the 64 bits set, in
// ascending order. It panics for n < 1.
func ChooseN(n int) []Bitboard {
	if n < 1 || n > NumSquares {
		panic(fmt.Sprintf("board: cannot choose %d of %d squares", n, NumSquares))
	}

	if n == 1 {
		out := make([]Bitboard, 0, NumSquares)
		for sq := Square(0); sq < NoSquare; sq++ {
			out = append(out, SquareBB(sq))
		}
		return out
	}

	prev := ChooseN(n - 1)
	hint := len(prev) * (NumSquares - n + 1) / n
	seen := make(map[Bitboard]struct{}, hint)
	out := make([]Bitboard, 0, hint)

	for _, bb := range prev {
		for sq := Square(0); sq < NoSquare; sq++ {
			next := bb | SquareBB(sq)
			if next == bb {
				continue
			}
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			out = append(out, next)
		}
	}

	slices.Sort(out)
	return out
}
