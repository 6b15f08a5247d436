// Package attacks precomputes threat and move tables for every piece, square
// and blocker layout, so move generation reduces to a lookup.
package attacks

import (
	"fmt"

	"github.com/danielenielsen/chess-engine-two/internal/board"
)

// Offset is a relative (column, row) step from a piece's square.
type Offset struct {
	DCol, DRow int
}

// Ray is an ordered list of offsets, walked until an edge or blocker stops it.
type Ray []Offset

// maxSlide is the longest distance a sliding piece can travel.
const maxSlide = board.Width - 1

var (
	whitePawnRays = []Ray{{{1, 1}}, {{-1, 1}}}
	blackPawnRays = []Ray{{{1, -1}}, {{-1, -1}}}

	rookRays   = slide(Offset{1, 0}, Offset{-1, 0}, Offset{0, 1}, Offset{0, -1})
	bishopRays = slide(Offset{1, 1}, Offset{-1, 1}, Offset{1, -1}, Offset{-1, -1})
	queenRays  = append(append([]Ray{}, rookRays...), bishopRays...)

	knightRays = jumps(
		Offset{1, 2}, Offset{2, 1}, Offset{-1, -2}, Offset{-2, -1},
		Offset{-1, 2}, Offset{-2, 1}, Offset{1, -2}, Offset{2, -1},
	)
	kingRays = jumps(
		Offset{1, 1}, Offset{0, 1}, Offset{-1, 1}, Offset{-1, 0},
		Offset{-1, -1}, Offset{0, -1}, Offset{1, -1}, Offset{1, 0},
	)
)

// slide builds one ray per direction, each running to the far edge.
func slide(dirs ...Offset) []Ray {
	rays := make([]Ray, 0, len(dirs))
	for _, d := range dirs {
		ray := make(Ray, 0, maxSlide)
		for k := 1; k <= maxSlide; k++ {
			ray = append(ray, Offset{d.DCol * k, d.DRow * k})
		}
		rays = append(rays, ray)
	}
	return rays
}

// jumps builds single-step rays.
func jumps(steps ...Offset) []Ray {
	rays := make([]Ray, 0, len(steps))
	for _, s := range steps {
		rays = append(rays, Ray{s})
	}
	return rays
}

// Catalog returns the movement rays of a piece. Only pawns depend on color:
// White advances toward increasing rows, Black toward decreasing rows.
// The returned slice is shared and must not be modified.
func Catalog(pt board.PieceType, c board.Color) []Ray {
	switch pt {
	case board.Pawn:
		if c == board.Black {
			return blackPawnRays
		}
		return whitePawnRays
	case board.Knight:
		return knightRays
	case board.Bishop:
		return bishopRays
	case board.Rook:
		return rookRays
	case board.Queen:
		return queenRays
	case board.King:
		return kingRays
	default:
		panic(fmt.Sprintf("attacks: no movement catalog for piece type %d", pt))
	}
}

// colorDependent reports whether a piece's catalog differs between colors.
func colorDependent(pt board.PieceType) bool {
	return pt == board.Pawn
}
