//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package engine is the facade used by every outer collaborator (the
// UCI protocol shim, the puzzle runner, the command-line tool): it is
// the only package allowed to reach into position, movegen, evaluator
// and search at once, so none of those need to know about each other
// beyond what they already import directly.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/tnoack/chessforge/internal/evaluator"
	myLogging "github.com/tnoack/chessforge/internal/logging"
	"github.com/tnoack/chessforge/internal/movegen"
	"github.com/tnoack/chessforge/internal/position"
	"github.com/tnoack/chessforge/internal/search"
	. "github.com/tnoack/chessforge/internal/types"
)

// Engine owns the current position and the resources a search over it
// needs. Create with NewEngine; the zero value is not usable.
type Engine struct {
	log *logging.Logger

	pos   *position.Position
	eval  evaluator.Evaluator
	srch  *search.Search
	busy  *semaphore.Weighted
	rng   *rand.Rand
	nodes uint64
}

// NewEngine creates an Engine on the standard start position with a
// time-seeded tie-breaker: which move among several tying for best
// score is returned is then not deterministic across runs. Use
// NewEngineSeeded for reproducible tie-breaking.
func NewEngine() *Engine {
	e := &Engine{
		log:  myLogging.GetLog(),
		pos:  position.NewPosition(),
		eval: evaluator.NewMaterialEvaluator(),
		srch: search.NewSearch(),
		busy: semaphore.NewWeighted(1),
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	return e
}

// NewEngineSeeded creates an Engine whose root-move tie-breaking is
// deterministic for a given seed, useful for reproducible tests and
// puzzle benchmarking.
func NewEngineSeeded(seed int64) *Engine {
	e := NewEngine()
	e.rng = rand.New(rand.NewSource(seed))
	return e
}

// SetStartPos resets the position to the standard chess starting
// position.
func (e *Engine) SetStartPos() {
	e.pos = position.NewPosition()
}

// SetPositionFEN sets the position from a FEN string and then applies
// moves (in UCI long algebraic form) one by one, matching the UCI
// "position fen ... moves ..." command semantics. An invalid FEN or an
// illegal/malformed move in the list is returned as an error without
// mutating the engine's current position.
func (e *Engine) SetPositionFEN(fen string, moves []string) error {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		return fmt.Errorf("invalid FEN: %w", err)
	}
	for _, uci := range moves {
		mv, ok := MoveFromUCI(uci)
		if !ok {
			return fmt.Errorf("malformed move %q", uci)
		}
		if !isLegal(p, mv) {
			return fmt.Errorf("illegal move %q in position %s", uci, p.Fen())
		}
		if _, err := p.MakeMove(mv); err != nil {
			return fmt.Errorf("illegal move %q: %w", uci, err)
		}
	}
	e.pos = p
	return nil
}

// Position returns the current position, mainly for callers (the UCI
// shim, puzzle runner) that need to print or inspect it.
func (e *Engine) Position() *position.Position {
	return e.pos
}

// SearchToDepth searches the current position to the given depth and
// returns the chosen move in UCI notation together with the node
// count. When several root moves tie for the best score, the engine's
// RNG (seeded explicitly via NewEngineSeeded, or time-seeded by
// NewEngine otherwise) picks among them. An empty best-move set (no
// legal moves at all) returns the UCI null-move sentinel "0000".
func (e *Engine) SearchToDepth(depth int) (string, uint64, error) {
	if !e.busy.TryAcquire(1) {
		return "", 0, fmt.Errorf("search already in progress")
	}
	defer e.busy.Release(1)

	result := e.srch.SearchToDepth(e.pos, search.Limits{Depth: depth})
	e.nodes = result.Nodes

	if len(result.BestMoves) == 0 {
		return NoMove.String(), result.Nodes, nil
	}
	mv := result.BestMoves[0]
	if len(result.BestMoves) > 1 {
		mv = result.BestMoves[e.rng.Intn(len(result.BestMoves))]
	}
	return mv.String(), result.Nodes, nil
}

// GameStatus reports whether the current position is ongoing,
// checkmate or stalemate.
func (e *Engine) GameStatus() GameStatus {
	return movegen.Status(e.pos)
}

// NewGame resets the engine for a fresh game: the position goes back
// to the start and the search's transposition table, which is only
// valid within one game, is cleared.
func (e *Engine) NewGame() {
	e.pos = position.NewPosition()
	e.srch.NewGame()
}

// Stop is a no-op forwarded to the search: SearchToDepth already runs
// synchronously to the requested depth with no time limit and no
// mid-iteration cancellation, so there is nothing to flip.
func (e *Engine) Stop() {
	e.srch.Stop()
}

// Nodes reports the node count of the most recently completed search.
func (e *Engine) Nodes() uint64 {
	return e.nodes
}

func isLegal(p *position.Position, mv Move) bool {
	legal := movegen.LegalMoves(p)
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i) == mv {
			return true
		}
	}
	return false
}
