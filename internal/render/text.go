// Package render draws a single table lookup as a terminal grid or an SVG
// diagram.
package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/danielenielsen/chess-engine-two/internal/board"
)

// Diagram is one lookup: a piece on a square, the occupancy it was queried
// with and the squares the table returned.
type Diagram struct {
	Piece     board.PieceType
	Color     board.Color
	Origin    board.Square
	Occupancy board.Bitboard
	Result    board.Bitboard
}

type cell uint8

const (
	cellEmpty cell = iota
	cellOrigin
	cellReached
	cellHitBlocker // occupied and in the result
	cellBlocker    // occupied, not in the result
)

func (d Diagram) cell(sq board.Square) cell {
	switch {
	case sq == d.Origin:
		return cellOrigin
	case d.Occupancy.IsSet(sq) && d.Result.IsSet(sq):
		return cellHitBlocker
	case d.Occupancy.IsSet(sq):
		return cellBlocker
	case d.Result.IsSet(sq):
		return cellReached
	default:
		return cellEmpty
	}
}

func (d Diagram) symbol() string {
	c := d.Piece.Char()
	if d.Color == board.White {
		c &^= 0x20
	}
	return string(c)
}

var (
	originColor  = color.New(color.FgCyan, color.Bold)
	reachedColor = color.New(color.FgGreen)
	hitColor     = color.New(color.FgRed, color.Bold)
	blockerColor = color.New(color.FgYellow)
)

// Text returns the diagram as an 8x8 grid, row 7 on top and the a-file on
// the left. Set color.NoColor to strip escape codes.
func Text(d Diagram) string {
	var sb strings.Builder
	for row := board.Width - 1; row >= 0; row-- {
		sb.WriteByte(byte('1' + row))
		sb.WriteByte(' ')
		for col := board.Width - 1; col >= 0; col-- {
			switch d.cell(board.NewSquare(col, row)) {
			case cellOrigin:
				sb.WriteString(originColor.Sprint(d.symbol()))
			case cellReached:
				sb.WriteString(reachedColor.Sprint("*"))
			case cellHitBlocker:
				sb.WriteString(hitColor.Sprint("x"))
			case cellBlocker:
				sb.WriteString(blockerColor.Sprint("o"))
			default:
				sb.WriteString(".")
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
