//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	"github.com/tnoack/chessforge/internal/config"
	"github.com/tnoack/chessforge/internal/evaluator"
	"github.com/tnoack/chessforge/internal/movegen"
	"github.com/tnoack/chessforge/internal/moveslice"
	"github.com/tnoack/chessforge/internal/position"
	"github.com/tnoack/chessforge/internal/transpositiontable"
	. "github.com/tnoack/chessforge/internal/types"
)

// run holds the mutable state of a single search call: the node
// counter and the shared resources (TT, evaluator) it reads from. A
// fresh run is created per call to Search.SearchToDepth so concurrent
// calls (which the engine facade serializes via a semaphore anyway)
// never share counters. There is no mid-search cancellation flag here:
// section 5 only requires the iterative-deepening driver to stop
// between completed depths, which Search.SearchToDepth does by
// checking its context before starting the next iteration.
type run struct {
	tt        *transpositiontable.TtTable
	eval      evaluator.Evaluator
	nodes     uint64
	maxQDepth int
}

// rootSearch runs one iterative-deepening iteration at depth, visiting
// moves in the order given, and returns every move tying for the best
// score together with that score. It implements the root-level
// principal-variation search described for section 4.7: the first move
// is searched with a full window, every subsequent move with a null
// window first and only re-searched on a fail-high.
func (r *run) rootSearch(p *position.Position, depth int, ordered *moveslice.MoveSlice) Result {
	alpha := -ValueInfinite
	beta := ValueInfinite
	bestScore := -ValueInfinite
	var bestMoves []Move

	usePVS := config.Settings.Search.UsePVS

	for i := 0; i < ordered.Len(); i++ {
		mv := ordered.At(i)
		undo, err := p.MakeMove(mv)
		if err != nil {
			continue
		}

		var score Value
		exact := true
		if usePVS && i > 0 {
			score = -r.negamax(p, depth-1, -(alpha + 1), -alpha)
			if score > alpha && score < beta {
				score = -r.negamax(p, depth-1, -beta, -alpha)
			} else {
				exact = score > alpha
			}
		} else {
			score = -r.negamax(p, depth-1, -beta, -alpha)
		}

		p.UnmakeMove(mv, undo)

		if exact {
			switch {
			case score > bestScore:
				bestScore = score
				bestMoves = []Move{mv}
			case score == bestScore:
				bestMoves = append(bestMoves, mv)
			}
			if score > alpha {
				alpha = score
			}
		}
	}

	return Result{BestMoves: bestMoves, Score: bestScore, Nodes: r.nodes}
}

// negamax searches the interior of the tree with alpha-beta pruning,
// probing and storing to the transposition table at every node and
// dropping into quiescence at the horizon (depth == 0). Mate and
// stalemate are scored from terminal nodes that have no legal moves:
// stalemate is a draw, checkmate is -(MateValue + depth) with depth
// the plies remaining, so that shorter mates (more depth remaining at
// the mated node) score higher than longer ones once negated back up
// the tree.
func (r *run) negamax(p *position.Position, depth int, alpha, beta Value) Value {
	r.nodes++

	alphaOrig := alpha

	var ttMove Move
	useTT := config.Settings.Search.UseTT
	if useTT {
		if e := r.tt.Probe(p.Hash()); e != nil {
			ttMove = e.Move
			if e.Usable(depth, alpha, beta) {
				return e.Score
			}
		}
	}

	legal := movegen.LegalMoves(p)
	if legal.Len() == 0 {
		if movegen.IsInCheck(p, p.SideToMove()) {
			return -(MateValue + Value(depth))
		}
		return ValueDraw
	}

	if depth == 0 {
		return r.quiescence(p, alpha, beta, r.maxQDepth)
	}

	orderMovesWithHint(legal, ttMove)

	best := -ValueInfinite
	var bestMove Move
	for i := 0; i < legal.Len(); i++ {
		mv := legal.At(i)
		undo, err := p.MakeMove(mv)
		if err != nil {
			continue
		}
		score := -r.negamax(p, depth-1, -beta, -alpha)
		p.UnmakeMove(mv, undo)

		if score > best {
			best = score
			bestMove = mv
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	if useTT {
		bound := transpositiontable.BoundExact
		switch {
		case best <= alphaOrig:
			bound = transpositiontable.BoundUpper
		case best >= beta:
			bound = transpositiontable.BoundLower
		}
		r.tt.Put(p.Hash(), depth, best, bound, bestMove)
	}

	return best
}

// quiescence extends the search along noisy moves only (captures,
// en-passant, promotions) until the position is quiet or qDepthLeft is
// exhausted, using a stand-pat score as the lower bound at every node.
// This keeps the horizon effect of a fixed-depth search from
// misjudging a position that is mid-capture-sequence.
//
// A side to move in check never stands pat: all evasions are generated
// and descended regardless of qDepthLeft, so a mate hiding just past
// the horizon is never missed by assuming the position is quiet.
func (r *run) quiescence(p *position.Position, alpha, beta Value, qDepthLeft int) Value {
	r.nodes++

	if movegen.IsInCheck(p, p.SideToMove()) {
		evasions := movegen.LegalMoves(p)
		if evasions.Len() == 0 {
			return -(MateValue + Value(qDepthLeft))
		}
		best := -ValueInfinite
		for i := 0; i < evasions.Len(); i++ {
			mv := evasions.At(i)
			undo, err := p.MakeMove(mv)
			if err != nil {
				continue
			}
			score := -r.quiescence(p, -beta, -alpha, qDepthLeft)
			p.UnmakeMove(mv, undo)

			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	standPat := r.eval.Evaluate(p)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if qDepthLeft == 0 {
		return alpha
	}
	if !config.Settings.Search.UseQuiescence {
		return alpha
	}

	noisy := movegen.NoisyMoves(p)
	if noisy.Len() == 0 {
		return alpha
	}

	for i := 0; i < noisy.Len(); i++ {
		mv := noisy.At(i)
		undo, err := p.MakeMove(mv)
		if err != nil {
			continue
		}
		score := -r.quiescence(p, -beta, -alpha, qDepthLeft-1)
		p.UnmakeMove(mv, undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// orderMovesWithHint moves the transposition-table move (if present in
// the slice) to the front, leaving the relative order of every other
// move untouched.
func orderMovesWithHint(moves *moveslice.MoveSlice, hint Move) {
	if hint == NoMove {
		return
	}
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i) == hint {
			if i != 0 {
				front := moves.At(0)
				moves.Set(0, hint)
				moves.Set(i, front)
			}
			return
		}
	}
}
