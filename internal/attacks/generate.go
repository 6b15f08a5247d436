package attacks

import (
	"fmt"

	"github.com/danielenielsen/chess-engine-two/internal/board"
)

// Mode selects how a blocker on a ray is treated.
type Mode uint8

const (
	// Threat includes the first blocker on each ray (attacked squares).
	Threat Mode = iota
	// Move excludes any occupied square (reachable destinations).
	Move
)

// Modes lists both modes in table order.
var Modes = [2]Mode{Threat, Move}

func (m Mode) String() string {
	switch m {
	case Threat:
		return "threat"
	case Move:
		return "move"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses "threat" or "move".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "threat", "t":
		return Threat, true
	case "move", "m":
		return Move, true
	default:
		return 0, false
	}
}

// Generate walks every ray of the piece from sq and returns the union of the
// squares it reaches. A ray ends at the board edge or at the first square in
// occupied; in Threat mode that square is included, in Move mode it is not.
// It panics if sq is off the board.
func Generate(pt board.PieceType, c board.Color, sq board.Square, occupied board.Bitboard, mode Mode) board.Bitboard {
	col, row := sq.MustValid().Coords()

	var result board.Bitboard
	for _, ray := range Catalog(pt, c) {
		for _, o := range ray {
			tc, tr := col+o.DCol, row+o.DRow
			if !board.OnBoard(tc, tr) {
				break
			}

			dest := board.SquareBB(board.NewSquare(tc, tr))
			blocked := occupied&dest != 0
			if blocked && mode == Move {
				break
			}

			result |= dest
			if blocked {
				break
			}
		}
	}
	return result
}

// Footprint returns the squares a piece reaches from sq on an empty board.
func Footprint(pt board.PieceType, c board.Color, sq board.Square) board.Bitboard {
	return Generate(pt, c, sq, 0, Threat)
}
