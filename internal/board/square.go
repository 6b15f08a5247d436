// Package board implements the bitboard primitives shared by the attack tables.
package board

import (
	"errors"
	"fmt"
)

// Square represents a square on the chess board (0-63).
// Square 0 is the lower-right corner (h1) and square 63 the upper-left (a8):
// column = sq % 8 counts from the h-file toward the a-file, row = sq / 8.
type Square uint8

const (
	// Width is the number of columns (and rows) of the board.
	Width = 8
	// NumSquares is the number of squares on the board.
	NumSquares = Width * Width

	NoSquare Square = NumSquares
)

// ErrInvalidSquare is returned when square notation cannot be parsed.
var ErrInvalidSquare = errors.New("invalid square")

// NewSquare creates a square from column and row (0-indexed).
// It panics if either component is off the board.
func NewSquare(col, row int) Square {
	if !OnBoard(col, row) {
		panic(fmt.Sprintf("board: coordinates (%d, %d) off the board", col, row))
	}
	return Square(row*Width + col)
}

// OnBoard reports whether (col, row) lies on the 8x8 board.
func OnBoard(col, row int) bool {
	return col >= 0 && col < Width && row >= 0 && row < Width
}

// Col returns the column of the square (0-7, 0 = h-file).
func (sq Square) Col() int {
	return int(sq) % Width
}

// Row returns the row of the square (0-7, 0 = rank 1).
func (sq Square) Row() int {
	return int(sq) / Width
}

// Coords returns (column, row). It is the inverse of NewSquare.
func (sq Square) Coords() (int, int) {
	return sq.Col(), sq.Row()
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// MustValid panics if the square is off the board.
func (sq Square) MustValid() Square {
	if !sq.IsValid() {
		panic(fmt.Sprintf("board: square %d out of range", sq))
	}
	return sq
}

// String returns the algebraic notation for the square (e.g., "h1" for 0).
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'h'-sq.Col(), '1'+sq.Row())
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	col := int('h') - int(s[0])
	row := int(s[1]) - int('1')

	if !OnBoard(col, row) {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	return NewSquare(col, row), nil
}
