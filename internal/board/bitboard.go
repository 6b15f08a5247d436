package board

import (
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit i set means square i is occupied, attacked or reachable.
type Bitboard uint64

// Column masks, column 0 being the h-file.
const (
	Col0 Bitboard = 0x0101010101010101
	Col1 Bitboard = Col0 << 1
	Col2 Bitboard = Col0 << 2
	Col3 Bitboard = Col0 << 3
	Col4 Bitboard = Col0 << 4
	Col5 Bitboard = Col0 << 5
	Col6 Bitboard = Col0 << 6
	Col7 Bitboard = Col0 << 7
)

// Row masks
const (
	Row0 Bitboard = 0x00000000000000FF
	Row7 Bitboard = Row0 << 56
)

const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF
)

// ColMask returns the column mask for a given column (0-7).
var ColMask = [Width]Bitboard{Col0, Col1, Col2, Col3, Col4, Col5, Col6, Col7}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | (1 << sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&(1<<sq) != 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the most significant bit (highest square index).
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// SubsetOf reports whether every bit of b is also set in mask.
func (b Bitboard) SubsetOf(mask Bitboard) bool {
	return b&^mask == 0
}

// Squares returns the set squares in ascending order.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

// String returns a visual representation of the bitboard,
// row 7 on top and column 7 (the a-file) on the left.
func (b Bitboard) String() string {
	var sb strings.Builder
	for row := Width - 1; row >= 0; row-- {
		sb.WriteByte(byte('1' + row))
		sb.WriteByte(' ')
		for col := Width - 1; col >= 0; col-- {
			if b.IsSet(NewSquare(col, row)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
