package attacks

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/danielenielsen/chess-engine-two/internal/board"
)

var (
	// ErrOutOfDomain is returned when restored entries hold an occupancy
	// outside the footprint of their square.
	ErrOutOfDomain = errors.New("occupancy outside footprint")
	// ErrIncompleteTable is returned when restored entries do not cover every
	// subset of a footprint.
	ErrIncompleteTable = errors.New("incomplete table")
)

// Key identifies one table entry.
type Key struct {
	Color     board.Color
	Square    board.Square
	Occupancy board.Bitboard
}

// Entry is a key with its stored result.
type Entry struct {
	Key
	Result board.Bitboard
}

// Table maps (color, square, occupancy) to the threatened or reachable
// squares for one piece type and mode. Occupancies are always subsets of the
// square's footprint. A Table is read-only once built.
type Table struct {
	piece      board.PieceType
	mode       Mode
	footprints [2][board.NumSquares]board.Bitboard
	// Color-invariant pieces share the per-square maps between colors.
	entries [2][board.NumSquares]map[board.Bitboard]board.Bitboard
	size    int
}

func newTable(pt board.PieceType, mode Mode) *Table {
	return &Table{piece: pt, mode: mode}
}

// buildTables fills one table per mode from a single footprint and subset
// pass, so the tables of a pair always agree on their key domain.
func buildTables(pt board.PieceType, modes ...Mode) []*Table {
	tables := make([]*Table, len(modes))
	for i, m := range modes {
		tables[i] = newTable(pt, m)
	}

	for _, c := range board.Colors {
		for sq := board.Square(0); sq < board.NoSquare; sq++ {
			fp := Footprint(pt, c, sq)

			if c == board.Black && !colorDependent(pt) {
				for _, t := range tables {
					t.footprints[c][sq] = fp
					t.entries[c][sq] = t.entries[board.White][sq]
					t.size += len(t.entries[c][sq])
				}
				continue
			}

			subsets := board.Subsets(fp)
			for _, t := range tables {
				t.footprints[c][sq] = fp
				t.entries[c][sq] = make(map[board.Bitboard]board.Bitboard, len(subsets))
			}
			for _, occ := range subsets {
				for _, t := range tables {
					t.entries[c][sq][occ] = Generate(pt, c, sq, occ, t.mode)
				}
			}
			for _, t := range tables {
				t.size += len(subsets)
			}
		}
	}
	return tables
}

// BuildTable builds a single table.
func BuildTable(pt board.PieceType, mode Mode) *Table {
	mustHaveTable(pt)
	return buildTables(pt, mode)[0]
}

// RestoreTable rebuilds a table from stored entries. Every key must lie in
// its square's footprint and every footprint subset must be present.
func RestoreTable(pt board.PieceType, mode Mode, entries []Entry) (*Table, error) {
	mustHaveTable(pt)
	t := newTable(pt, mode)
	for _, c := range board.Colors {
		for sq := board.Square(0); sq < board.NoSquare; sq++ {
			fp := Footprint(pt, c, sq)
			t.footprints[c][sq] = fp
			t.entries[c][sq] = make(map[board.Bitboard]board.Bitboard, 1<<fp.PopCount())
		}
	}

	for _, e := range entries {
		if e.Color > board.Black || !e.Square.IsValid() {
			return nil, fmt.Errorf("%w: key %v/%d", ErrOutOfDomain, e.Color, e.Square)
		}
		if !e.Occupancy.SubsetOf(t.footprints[e.Color][e.Square]) {
			return nil, fmt.Errorf("%w: %v %s occupancy %#x", ErrOutOfDomain, e.Color, e.Square, uint64(e.Occupancy))
		}
		m := t.entries[e.Color][e.Square]
		if _, dup := m[e.Occupancy]; !dup {
			t.size++
		}
		m[e.Occupancy] = e.Result
	}

	for _, c := range board.Colors {
		for sq := board.Square(0); sq < board.NoSquare; sq++ {
			want := 1 << t.footprints[c][sq].PopCount()
			if got := len(t.entries[c][sq]); got != want {
				return nil, fmt.Errorf("%w: %v %s has %d of %d entries", ErrIncompleteTable, c, sq, got, want)
			}
		}
	}
	return t, nil
}

// Piece returns the piece type the table was built for.
func (t *Table) Piece() board.PieceType {
	return t.piece
}

// Mode returns whether the table holds threats or moves.
func (t *Table) Mode() Mode {
	return t.mode
}

// Len returns the number of (color, square, occupancy) keys.
func (t *Table) Len() int {
	return t.size
}

// Footprint returns the squares the piece reaches from sq on an empty board.
// Occupancies passed to Lookup must be subsets of it.
func (t *Table) Footprint(c board.Color, sq board.Square) board.Bitboard {
	return t.footprints[c][sq]
}

// Get returns the stored result and whether the key exists.
func (t *Table) Get(c board.Color, sq board.Square, occupied board.Bitboard) (board.Bitboard, bool) {
	bb, ok := t.entries[c][sq][occupied]
	return bb, ok
}

// Lookup returns the stored result. occupied must be a subset of the
// footprint; out-of-domain occupancies return an empty bitboard.
func (t *Table) Lookup(c board.Color, sq board.Square, occupied board.Bitboard) board.Bitboard {
	return t.entries[c][sq][occupied]
}

// LookupMasked intersects a live board occupancy with the footprint first.
func (t *Table) LookupMasked(c board.Color, sq board.Square, occupied board.Bitboard) board.Bitboard {
	return t.entries[c][sq][occupied&t.footprints[c][sq]]
}

// Each calls fn for every entry in a fixed order: color, square, then the
// subset enumeration order of the footprint.
func (t *Table) Each(fn func(Entry)) {
	for _, c := range board.Colors {
		for sq := board.Square(0); sq < board.NoSquare; sq++ {
			m := t.entries[c][sq]
			for _, occ := range board.Subsets(t.footprints[c][sq]) {
				fn(Entry{Key: Key{Color: c, Square: sq, Occupancy: occ}, Result: m[occ]})
			}
		}
	}
}

// Checksum returns an xxhash64 digest of every entry in Each order.
// Two builds of the same table always produce the same checksum.
func (t *Table) Checksum() uint64 {
	d := xxhash.New()
	var buf [18]byte
	t.Each(func(e Entry) {
		buf[0] = byte(e.Color)
		buf[1] = byte(e.Square)
		binary.LittleEndian.PutUint64(buf[2:], uint64(e.Occupancy))
		binary.LittleEndian.PutUint64(buf[10:], uint64(e.Result))
		_, _ = d.Write(buf[:])
	})
	return d.Sum64()
}

func (t *Table) String() string {
	return fmt.Sprintf("%s %s (%d entries)", t.piece, t.mode, t.size)
}
