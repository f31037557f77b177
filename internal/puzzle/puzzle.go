//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package puzzle loads and runs Lichess-style tactics puzzles from CSV
// files, grounded on the original benchmark tool this core's spec was
// distilled from (see DESIGN.md). Only the first three fields of each
// row are used; any further fields (rating, popularity, tags, URL,
// opening family) are allowed and ignored.
package puzzle

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/tnoack/chessforge/internal/engine"
)

// Puzzle is one tactics problem: a starting FEN and the full solution
// line in UCI long algebraic notation.
type Puzzle struct {
	ID    string
	FEN   string
	Moves []string
}

// LoadFile parses the contents of a puzzle CSV file (use LoadPath to
// read one from disk), skipping the header row. A row
// with fewer than three fields, or an empty moves field, is reported as
// an error naming the offending line.
func LoadFile(contents string) ([]Puzzle, error) {
	reader := csv.NewReader(strings.NewReader(contents))
	// Columns beyond the three fields this package reads (rating, deviation,
	// popularity, play count, themes, URL, opening tags) are optional and
	// may vary in count between puzzle sources, so column count is not
	// enforced here.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	records = records[1:] // header row

	var puzzles []Puzzle
	for i, fields := range records {
		p, err := parseRow(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		puzzles = append(puzzles, p)
	}
	return puzzles, nil
}

// LoadPath reads and parses a puzzle CSV file from disk.
func LoadPath(path string) ([]Puzzle, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return LoadFile(string(contents))
}

func parseRow(fields []string) (Puzzle, error) {
	if len(fields) < 3 {
		return Puzzle{}, fmt.Errorf("expected at least 3 CSV fields")
	}

	moves := strings.Fields(fields[2])
	if len(moves) == 0 {
		return Puzzle{}, fmt.Errorf("moves field is empty")
	}

	return Puzzle{ID: fields[0], FEN: fields[1], Moves: moves}, nil
}

// Run plays the setup move (p.Moves[0], made by the side not actually
// being tested), then alternates: the engine is asked to search and
// its reply is compared against the next move in the line (the side
// under test), and the move after that (the opponent's forced reply)
// is applied without being searched. The puzzle is solved iff every
// engine reply matched exactly.
func Run(e *engine.Engine, p Puzzle, depth int) (solved bool, err error) {
	if len(p.Moves) == 0 {
		return false, fmt.Errorf("puzzle %s has no moves", p.ID)
	}

	played := p.Moves[:1]
	if err := e.SetPositionFEN(p.FEN, played); err != nil {
		return false, fmt.Errorf("puzzle %s: setup move: %w", p.ID, err)
	}

	for i := 1; i < len(p.Moves); i++ {
		expected := p.Moves[i]
		isEngineTurn := i%2 == 1

		if isEngineTurn {
			got, _, err := e.SearchToDepth(depth)
			if err != nil {
				return false, fmt.Errorf("puzzle %s: search: %w", p.ID, err)
			}
			if got != expected {
				return false, nil
			}
		}

		played = append(played, expected)
		if err := e.SetPositionFEN(p.FEN, played); err != nil {
			return false, fmt.Errorf("puzzle %s: replay: %w", p.ID, err)
		}
	}

	return true, nil
}
