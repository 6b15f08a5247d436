// attackgen builds the attack and move lookup tables, reports their size
// and checksums, and can persist, verify or draw them.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/danielenielsen/chess-engine-two/internal/attacks"
	"github.com/danielenielsen/chess-engine-two/internal/render"
	"github.com/danielenielsen/chess-engine-two/internal/storage"
)

// Rough per-entry cost of a Go map holding Bitboard -> Bitboard.
const bytesPerEntry = 40

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	pieces     = flag.String("pieces", "all", "comma separated piece tables to build (pawn,rook,bishop,knight,king)")
	parallel   = flag.Int("parallel", 0, "tables built at once (0 = GOMAXPROCS)")
	dbDir      = flag.String("db", "", `snapshot database directory ("default" for the platform data dir)`)
	save       = flag.Bool("save", false, "store the built tables in the snapshot database")
	verify     = flag.Bool("verify", false, "compare the built tables against stored snapshots")
	show       = flag.String("show", "", "draw one lookup: piece:mode:color:square[:occupancy]")
	svgOut     = flag.String("svg", "", "also write the -show lookup as SVG to this file")
	verbose    = flag.Bool("v", false, "log per-table build progress")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	if err := run(); err != nil {
		pprof.StopCPUProfile()
		log.Fatal(err)
	}
}

func run() error {
	pts, err := parsePieces(*pieces)
	if err != nil {
		return err
	}

	var q *query
	if *show != "" {
		parsed, err := parseQuery(*show)
		if err != nil {
			return err
		}
		q = &parsed
	}

	opts := []attacks.BuildOption{
		attacks.WithPieces(pts...),
		attacks.WithParallelism(*parallel),
	}
	if *verbose {
		opts = append(opts, attacks.WithLogger(log.Default()))
	}

	start := time.Now()
	tables := attacks.Build(opts...)
	log.Printf("tables built in %v", time.Since(start))

	report(tables)

	if *dbDir != "" {
		if err := snapshot(tables); err != nil {
			return err
		}
	}

	if q != nil {
		return draw(tables, *q)
	}
	return nil
}

func report(tables *attacks.Tables) {
	p := message.NewPrinter(language.English)
	total := 0
	tables.Each(func(t *attacks.Table) {
		total += t.Len()
		log.Print(p.Sprintf("%-6s %-6s %12d entries  checksum %016x", t.Piece(), t.Mode(), t.Len(), t.Checksum()))
	})
	log.Print(p.Sprintf("%d entries in total (~%s), square-count cache %d entries",
		total, humanize.Bytes(uint64(total*bytesPerEntry)), tables.SquareCount.Len()))
}

func snapshot(tables *attacks.Tables) error {
	dir := *dbDir
	if dir == "default" {
		var err error
		if dir, err = storage.DefaultDir(); err != nil {
			return err
		}
	}

	store, err := storage.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	if *verify {
		var verr error
		tables.Each(func(t *attacks.Table) {
			if verr != nil {
				return
			}
			stored, err := store.LoadTable(t.Piece(), t.Mode())
			if err != nil {
				verr = err
				return
			}
			if stored.Checksum() != t.Checksum() {
				verr = fmt.Errorf("%s: stored checksum %016x, built %016x", t, stored.Checksum(), t.Checksum())
				return
			}
			log.Printf("verified %s", t)
		})
		if verr != nil {
			return verr
		}
	}

	if *save {
		if err := store.SaveTables(tables); err != nil {
			return err
		}
		metas, err := store.List()
		if err != nil {
			return err
		}
		for _, m := range metas {
			log.Printf("stored %s", m)
		}
	}
	return nil
}

func draw(tables *attacks.Tables, q query) error {
	tbl := tables.Table(q.piece, q.mode)
	if tbl == nil {
		return fmt.Errorf("%s %s table was not built", q.piece, q.mode)
	}

	occ := q.occupancy & tbl.Footprint(q.color, q.square)
	if occ != q.occupancy {
		log.Printf("occupancy masked to the footprint: %#x", uint64(occ))
	}

	d := render.Diagram{
		Piece:     q.piece,
		Color:     q.color,
		Origin:    q.square,
		Occupancy: occ,
		Result:    tbl.Lookup(q.color, q.square, occ),
	}
	fmt.Printf("%s %s %s on %s, occupancy %#x -> %d\n", q.color, q.piece, q.mode, q.square, uint64(occ), uint64(d.Result))
	fmt.Print(render.Text(d))

	if *svgOut == "" {
		return nil
	}
	f, err := os.Create(*svgOut)
	if err != nil {
		return err
	}
	render.SVG(f, d)
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("diagram written to %s", *svgOut)
	return nil
}
