package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/danielenielsen/chess-engine-two/internal/board"
)

const (
	cellSize = 48
	margin   = 20
	boardPx  = cellSize * board.Width
)

var (
	lightFill = "fill:#f0d9b5"
	darkFill  = "fill:#b58863"
	markStyle = map[cell]string{
		cellReached:    "fill:#2e8b57;fill-opacity:0.7",
		cellHitBlocker: "fill:none;stroke:#c0392b;stroke-width:4",
		cellBlocker:    "fill:#7f8c8d;fill-opacity:0.8",
	}
	labelStyle  = "font-family:sans-serif;font-size:12px;text-anchor:middle"
	originStyle = "font-family:sans-serif;font-size:28px;font-weight:bold;text-anchor:middle;fill:#1f3a93"
)

// SVG writes the diagram as an SVG board, a-file on the left, rank 8 on top.
func SVG(w io.Writer, d Diagram) {
	canvas := svg.New(w)
	canvas.Start(boardPx+2*margin, boardPx+2*margin)
	canvas.Title(fmt.Sprintf("%s %s on %s", d.Color, d.Piece, d.Origin))

	for row := 0; row < board.Width; row++ {
		for col := 0; col < board.Width; col++ {
			x, y := squareXY(col, row)
			fill := lightFill
			if (col+row)%2 == 1 {
				fill = darkFill
			}
			canvas.Rect(x, y, cellSize, cellSize, fill)

			cx, cy := x+cellSize/2, y+cellSize/2
			switch c := d.cell(board.NewSquare(col, row)); c {
			case cellOrigin:
				canvas.Text(cx, cy+10, d.symbol(), originStyle)
			case cellReached:
				canvas.Circle(cx, cy, cellSize/6, markStyle[c])
			case cellHitBlocker, cellBlocker:
				canvas.Circle(cx, cy, cellSize/3, markStyle[c])
			}
		}
	}

	for i := 0; i < board.Width; i++ {
		x, _ := squareXY(i, 0)
		canvas.Text(x+cellSize/2, boardPx+margin+15, string(rune('h'-i)), labelStyle)
		_, y := squareXY(0, i)
		canvas.Text(margin/2, y+cellSize/2+4, string(rune('1'+i)), labelStyle)
	}

	canvas.End()
}

// squareXY returns the top-left pixel of a square. Column 7 is drawn
// leftmost and row 7 topmost.
func squareXY(col, row int) (int, int) {
	return margin + (board.Width-1-col)*cellSize, margin + (board.Width-1-row)*cellSize
}
