//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tnoack/chessforge/internal/config"
	"github.com/tnoack/chessforge/internal/evaluator"
	myLogging "github.com/tnoack/chessforge/internal/logging"
	"github.com/tnoack/chessforge/internal/movegen"
	"github.com/tnoack/chessforge/internal/moveslice"
	"github.com/tnoack/chessforge/internal/position"
	"github.com/tnoack/chessforge/internal/transpositiontable"
	. "github.com/tnoack/chessforge/internal/types"
)

var out = message.NewPrinter(language.German)

// Search holds the resources a search needs across calls: the
// transposition table (persists across moves within a game, cleared on
// NewGame) and the evaluator. A semaphore guards against overlapping
// searches the way the teacher engine does, even though this core's
// facade only ever calls SearchToDepth synchronously.
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	isRunning *semaphore.Weighted

	tt   *transpositiontable.TtTable
	eval evaluator.Evaluator

	lastResult Result
}

// NewSearch creates a Search instance with its own transposition table
// sized from configuration.
func NewSearch() *Search {
	return &Search{
		log:       myLogging.GetLog(),
		slog:      myLogging.GetSearchLog(),
		isRunning: semaphore.NewWeighted(int64(1)),
		tt:        transpositiontable.NewTtTable(config.Settings.Search.TTSize),
		eval:      evaluator.NewMaterialEvaluator(),
	}
}

// NewGame clears all state tied to the previous game, most importantly
// the transposition table: entries from a different game are never
// valid for this one.
func (s *Search) NewGame() {
	s.tt.Clear()
	s.lastResult = Result{}
}

// SearchToDepth runs iterative deepening from ply 1 up to limits.Depth
// (or the configured default if zero), seeding each iteration's move
// order from, in priority order: the transposition-table move for the
// root position, the best-move set found by the previous iteration,
// and finally the remaining legal moves in generation order. It blocks
// until finished; the only early exit is limits.MoveTime, checked before
// each new iteration (Stop does not interrupt it).
func (s *Search) SearchToDepth(p *position.Position, limits Limits) Result {
	if !s.isRunning.TryAcquire(1) {
		s.log.Warning("search already running, rejecting concurrent call")
		return Result{}
	}
	defer s.isRunning.Release(1)

	depth := limits.Depth
	if depth <= 0 {
		depth = config.Settings.Search.MaxDepth
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if limits.MoveTime > 0 {
		ctx, cancel = context.WithTimeout(ctx, limits.MoveTime)
		defer cancel()
	}

	r := &run{
		tt:        s.tt,
		eval:      s.eval,
		maxQDepth: config.Settings.Search.MaxQuiescenceDepth,
	}

	legal := movegen.LegalMoves(p)
	if legal.Len() == 0 {
		return Result{}
	}

	var result Result
	var prevBest []Move
	start := time.Now()

	for d := 1; d <= depth; d++ {
		select {
		case <-ctx.Done():
			s.slog.Info(out.Sprintf("search stopped by time limit at depth %d", d-1))
			return result
		default:
		}

		ordered := orderRootMoves(legal, s.tt.Probe(p.Hash()), prevBest)
		iterResult := r.rootSearch(p, d, ordered)
		result = iterResult
		result.Nodes = r.nodes
		prevBest = result.BestMoves

		elapsed := time.Since(start)
		nps := uint64(0)
		if elapsed > 0 {
			nps = uint64(float64(result.Nodes) / elapsed.Seconds())
		}
		s.slog.Info(out.Sprintf("depth %d score %d nodes %d nps %d time %dms",
			d, result.Score, result.Nodes, nps, elapsed.Milliseconds()))

		if result.Score.IsMateScore() {
			break
		}
	}

	s.lastResult = result
	return result
}

// Stop is a no-op placeholder: SearchToDepth runs synchronously to
// completion and there is currently no long-running background search
// to interrupt mid-iteration beyond the MoveTime deadline already
// enforced in the depth loop.
func (s *Search) Stop() {}

// orderRootMoves builds the move order for one iteration: the
// transposition-table move first (if legal here), then the previous
// iteration's tying best moves, then everything else in generation
// order.
func orderRootMoves(legal *moveslice.MoveSlice, ttEntry *transpositiontable.TtEntry, prevBest []Move) *moveslice.MoveSlice {
	ordered := moveslice.NewMoveSlice(legal.Len())
	placed := make(map[Move]bool, legal.Len())

	place := func(mv Move) {
		if mv == NoMove || placed[mv] {
			return
		}
		for i := 0; i < legal.Len(); i++ {
			if legal.At(i) == mv {
				ordered.PushBack(mv)
				placed[mv] = true
				return
			}
		}
	}

	if ttEntry != nil {
		place(ttEntry.Move)
	}
	for _, mv := range prevBest {
		place(mv)
	}
	for i := 0; i < legal.Len(); i++ {
		place(legal.At(i))
	}

	return ordered
}
