package attacks

import (
	"fmt"
	"io"
	"log"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danielenielsen/chess-engine-two/internal/board"
)

// Pawn file masks used by the move-legality layer to suppress captures that
// would wrap around the board edge.
const (
	PawnMiddleMask = board.Col1 | board.Col2 | board.Col3 | board.Col4 | board.Col5 | board.Col6
	PawnLeftMask   = board.Col7
	PawnRightMask  = board.Col0
)

// DefaultSquareCountMax is the largest population cached by SquareCount.
const DefaultSquareCountMax = 3

// TablePieces lists the piece types that get threat and move tables.
// Queen attacks are the union of the rook and bishop lookups.
var TablePieces = []board.PieceType{board.Pawn, board.Rook, board.Bishop, board.Knight, board.King}

func hasTable(pt board.PieceType) bool {
	for _, p := range TablePieces {
		if p == pt {
			return true
		}
	}
	return false
}

func mustHaveTable(pt board.PieceType) {
	if !hasTable(pt) {
		panic(fmt.Sprintf("attacks: no lookup table for %s", pt))
	}
}

// Tables holds every lookup table plus the constants consumed next to them.
// It is immutable after Build and safe for concurrent reads.
type Tables struct {
	tables [board.NoPieceType][len(Modes)]*Table

	SquareCount *SquareCount

	PawnMiddleMask board.Bitboard
	PawnLeftMask   board.Bitboard
	PawnRightMask  board.Bitboard
}

type buildConfig struct {
	parallelism    int
	squareCountMax int
	logger         *log.Logger
	pieces         []board.PieceType
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

// WithParallelism bounds how many tables are built at once.
func WithParallelism(n int) BuildOption {
	return func(cfg *buildConfig) {
		cfg.parallelism = n
	}
}

// WithSquareCountMax sets the largest population cached by SquareCount.
func WithSquareCountMax(n int) BuildOption {
	return func(cfg *buildConfig) {
		cfg.squareCountMax = n
	}
}

// WithLogger reports build progress to l.
func WithLogger(l *log.Logger) BuildOption {
	return func(cfg *buildConfig) {
		cfg.logger = l
	}
}

// WithPieces restricts which piece tables are built. Tables for other
// pieces stay nil.
func WithPieces(pts ...board.PieceType) BuildOption {
	return func(cfg *buildConfig) {
		cfg.pieces = pts
	}
}

// Build constructs the threat and move tables for every piece in
// TablePieces together with the square-count cache. The tables have no
// dependency on each other and are built concurrently. Build panics on
// programming errors; it never fails otherwise.
func Build(opts ...BuildOption) *Tables {
	cfg := &buildConfig{
		parallelism:    runtime.GOMAXPROCS(0),
		squareCountMax: DefaultSquareCountMax,
		logger:         log.New(io.Discard, "", 0),
		pieces:         TablePieces,
	}
	for _, f := range opts {
		f(cfg)
	}
	for _, pt := range cfg.pieces {
		mustHaveTable(pt)
	}

	t := &Tables{
		PawnMiddleMask: PawnMiddleMask,
		PawnLeftMask:   PawnLeftMask,
		PawnRightMask:  PawnRightMask,
	}

	start := time.Now()
	var g errgroup.Group
	if cfg.parallelism > 0 {
		g.SetLimit(cfg.parallelism)
	}

	for _, pt := range cfg.pieces {
		pt := pt
		g.Go(func() (err error) {
			defer recoverInto(&err, pt.String())
			began := time.Now()
			pair := buildTables(pt, Modes[:]...)
			for _, tbl := range pair {
				t.tables[pt][tbl.mode] = tbl
			}
			cfg.logger.Printf("built %s tables: %d entries each in %v", pt, pair[0].Len(), time.Since(began))
			return nil
		})
	}

	g.Go(func() (err error) {
		defer recoverInto(&err, "square-count")
		t.SquareCount = NewSquareCount(cfg.squareCountMax)
		cfg.logger.Printf("built square-count cache: %d entries", t.SquareCount.Len())
		return nil
	})

	if err := g.Wait(); err != nil {
		panic(err)
	}
	cfg.logger.Printf("all tables built in %v", time.Since(start))
	return t
}

// recoverInto turns a panic in a build goroutine into an error, so Build can
// re-raise it on the caller's goroutine.
func recoverInto(err *error, what string) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("attacks: building %s: %v", what, r)
	}
}

// Table returns the table for a piece and mode, or nil if it was not built.
func (t *Tables) Table(pt board.PieceType, mode Mode) *Table {
	if int(pt) >= len(t.tables) || int(mode) >= len(Modes) {
		return nil
	}
	return t.tables[pt][mode]
}

// Lookup returns the stored result for (color, square, occupancy). occupied
// must be a subset of the footprint. It panics if the table was not built.
func (t *Tables) Lookup(pt board.PieceType, mode Mode, c board.Color, sq board.Square, occupied board.Bitboard) board.Bitboard {
	tbl := t.Table(pt, mode)
	if tbl == nil {
		panic(fmt.Sprintf("attacks: %s %s table not built", pt, mode))
	}
	return tbl.Lookup(c, sq, occupied)
}

// Each calls fn for every built table in TablePieces order, threat first.
func (t *Tables) Each(fn func(*Table)) {
	for _, pt := range TablePieces {
		for _, m := range Modes {
			if tbl := t.tables[pt][m]; tbl != nil {
				fn(tbl)
			}
		}
	}
}
