//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package evaluator scores a position from the side-to-move's
// perspective. Positional evaluation (mobility, king safety, pawn
// structure, ...) was part of the teacher's engine but is out of scope
// for this core; only material counting is implemented.
package evaluator

import (
	"github.com/tnoack/chessforge/internal/position"
	. "github.com/tnoack/chessforge/internal/types"
)

// Evaluator scores a position, positive values favoring the side to
// move.
type Evaluator interface {
	Evaluate(p *position.Position) Value
}

// pieceValues holds the centipawn value of each piece type, indexed by
// PieceType.
var pieceValues = [PtLength]Value{
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   0,
}

// MaterialEvaluator sums piece values, side-to-move relative.
type MaterialEvaluator struct{}

// NewMaterialEvaluator creates a MaterialEvaluator.
func NewMaterialEvaluator() *MaterialEvaluator {
	return &MaterialEvaluator{}
}

// Evaluate implements Evaluator.
func (e *MaterialEvaluator) Evaluate(p *position.Position) Value {
	var score Value
	side := p.SideToMove()
	for sq := Square(0); int(sq) < SqLength; sq++ {
		if !sq.IsValid() {
			continue
		}
		pc := p.PieceAt(sq)
		if pc.IsNone() {
			continue
		}
		v := pieceValues[pc.Type]
		if pc.Color == side {
			score += v
		} else {
			score -= v
		}
	}
	return score
}
