//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tnoack/chessforge/internal/evaluator"
	"github.com/tnoack/chessforge/internal/movegen"
	"github.com/tnoack/chessforge/internal/position"
	"github.com/tnoack/chessforge/internal/transpositiontable"
	. "github.com/tnoack/chessforge/internal/types"
)

func newTestRun() *run {
	return &run{
		tt:        transpositiontable.NewTtTable(4),
		eval:      evaluator.NewMaterialEvaluator(),
		maxQDepth: 8,
	}
}

func mustMove(s string) Move {
	mv, ok := MoveFromUCI(s)
	if !ok {
		panic("bad move literal: " + s)
	}
	return mv
}

// TestMatePreference checks that when a forced mate is available the
// root search prefers it over every other move, even one that wins
// material instead.
func TestMatePreference(t *testing.T) {
	p, err := position.NewPositionFen("1k6/8/8/8/7Q/8/PPP5/1K1Bq3 b - - 0 1")
	assert.NoError(t, err)

	r := newTestRun()
	legal := movegen.LegalMoves(p)
	result := r.rootSearch(p, 1, legal)

	assert.Contains(t, result.BestMoves, mustMove("e1d1"))
}

// TestQuiescenceSafety checks that a one-ply search does not walk into
// losing a queen to a pawn on the very next move, which a search with
// no quiescence extension would miss at depth 1.
func TestQuiescenceSafety(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/4p3/3p4/3Q2K1 w - - 0 1")
	assert.NoError(t, err)

	r := newTestRun()
	legal := movegen.LegalMoves(p)
	result := r.rootSearch(p, 1, legal)

	assert.NotContains(t, result.BestMoves, mustMove("d1d2"))
}

// TestStalemateScoresAsDraw checks the terminal-node scoring: a
// stalemated side to move has no legal moves and is not in check, so
// the position must score as a draw rather than a loss.
func TestStalemateScoresAsDraw(t *testing.T) {
	p, err := position.NewPositionFen("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	assert.NoError(t, err)

	r := newTestRun()
	score := r.negamax(p, 2, -ValueInfinite, ValueInfinite)
	assert.Equal(t, ValueDraw, score)
}

// referenceFullWidth is an independent, deliberately un-pruned negamax
// used only by tests: it shares negamax's terminal and horizon handling
// (mate/stalemate detection, quiescence) but never narrows its window
// and never cuts a branch short, so it always visits every node in the
// tree. Diffing it against negamax isolates exactly the property that
// alpha-beta pruning must not change: the best score found.
func (r *run) referenceFullWidth(p *position.Position, depth int) Value {
	r.nodes++

	legal := movegen.LegalMoves(p)
	if legal.Len() == 0 {
		if movegen.IsInCheck(p, p.SideToMove()) {
			return -(MateValue + Value(depth))
		}
		return ValueDraw
	}

	if depth == 0 {
		return r.quiescence(p, -ValueInfinite, ValueInfinite, r.maxQDepth)
	}

	best := -ValueInfinite
	for i := 0; i < legal.Len(); i++ {
		mv := legal.At(i)
		undo, err := p.MakeMove(mv)
		if err != nil {
			continue
		}
		score := -r.referenceFullWidth(p, depth-1)
		p.UnmakeMove(mv, undo)
		if score > best {
			best = score
		}
	}
	return best
}

// TestNegamaxMatchesFullWidthReferenceAtShallowDepth verifies alpha-beta
// pruning does not change the best score relative to a genuinely
// un-pruned full-width search (referenceFullWidth) at a shallow depth,
// and that pruning strictly cannot visit more nodes than the full-width
// search did.
func TestNegamaxMatchesFullWidthReferenceAtShallowDepth(t *testing.T) {
	p, err := position.NewPositionFen(position.StartFen)
	assert.NoError(t, err)

	reference := newTestRun()
	fullScore := reference.referenceFullWidth(p, 2)

	pruned := newTestRun()
	prunedScore := pruned.negamax(p, 2, -ValueInfinite, ValueInfinite)

	assert.Equal(t, fullScore, prunedScore)
	assert.LessOrEqual(t, pruned.nodes, reference.nodes)
}
