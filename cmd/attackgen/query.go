package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/danielenielsen/chess-engine-two/internal/attacks"
	"github.com/danielenielsen/chess-engine-two/internal/board"
)

var errInvalidQuery = errors.New("invalid query")

// query is a single table lookup given on the command line as
// piece:mode:color:square[:occupancy], e.g. "rook:threat:white:h1:0x1000000".
type query struct {
	piece     board.PieceType
	mode      attacks.Mode
	color     board.Color
	square    board.Square
	occupancy board.Bitboard
}

func parseQuery(s string) (query, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 && len(parts) != 5 {
		return query{}, fmt.Errorf("%w: want piece:mode:color:square[:occupancy], got %q", errInvalidQuery, s)
	}

	pt, err := parsePiece(parts[0])
	if err != nil {
		return query{}, err
	}

	mode, ok := attacks.ParseMode(parts[1])
	if !ok {
		return query{}, fmt.Errorf("%w: unknown mode %q", errInvalidQuery, parts[1])
	}

	c, ok := board.ParseColor(parts[2])
	if !ok {
		return query{}, fmt.Errorf("%w: unknown color %q", errInvalidQuery, parts[2])
	}

	sq, err := parseSquare(parts[3])
	if err != nil {
		return query{}, err
	}

	q := query{piece: pt, mode: mode, color: c, square: sq}
	if len(parts) == 5 {
		occ, err := strconv.ParseUint(parts[4], 0, 64)
		if err != nil {
			return query{}, fmt.Errorf("%w: occupancy %q: %v", errInvalidQuery, parts[4], err)
		}
		q.occupancy = board.Bitboard(occ)
	}
	return q, nil
}

// parseSquare accepts algebraic notation or a raw index.
func parseSquare(s string) (board.Square, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= board.NumSquares {
			return board.NoSquare, fmt.Errorf("%w: square %d out of range", errInvalidQuery, n)
		}
		return board.Square(n), nil
	}
	return board.ParseSquare(s)
}

func parsePiece(s string) (board.PieceType, error) {
	for _, pt := range attacks.TablePieces {
		if strings.EqualFold(s, pt.String()) || (len(s) == 1 && board.PieceTypeFromChar(s[0]) == pt) {
			return pt, nil
		}
	}
	return board.NoPieceType, fmt.Errorf("%w: no table for piece %q", errInvalidQuery, s)
}

func parsePieces(s string) ([]board.PieceType, error) {
	if s == "" || s == "all" {
		return attacks.TablePieces, nil
	}
	var pts []board.PieceType
	for _, name := range strings.Split(s, ",") {
		pt, err := parsePiece(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	return pts, nil
}
