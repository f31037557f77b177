//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package movegen generates pseudo-legal and legal moves over a 0x88
// position, classifies noisy moves for quiescence search, and reports
// game status.
package movegen

import (
	"github.com/tnoack/chessforge/internal/moveslice"
	"github.com/tnoack/chessforge/internal/position"
	. "github.com/tnoack/chessforge/internal/types"
)

// promotionOrder is the fixed expansion order used whenever a pawn move
// lands on the back rank, matching the declared move-generation order
// invariant.
var promotionOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

// PseudoLegalMoves generates every pseudo-legal move for the side to
// move, in deterministic order: ascending 0x88 source index, then each
// piece's offset list in its declared order.
func PseudoLegalMoves(p *position.Position) *moveslice.MoveSlice {
	moves := moveslice.NewMoveSlice(64)
	side := p.SideToMove()

	for sq := Square(0); int(sq) < SqLength; sq++ {
		if !sq.IsValid() {
			continue
		}
		pc := p.PieceAt(sq)
		if pc.Color != side {
			continue
		}
		switch pc.Type {
		case Pawn:
			genPawnMoves(p, sq, moves)
		case Knight:
			genStepMoves(p, sq, KnightOffsets[:], moves)
		case King:
			genStepMoves(p, sq, KingOffsets[:], moves)
			genCastlingMoves(p, sq, moves)
		case Bishop:
			genSlideMoves(p, sq, BishopOffsets[:], moves)
		case Rook:
			genSlideMoves(p, sq, RookOffsets[:], moves)
		case Queen:
			genSlideMoves(p, sq, BishopOffsets[:], moves)
			genSlideMoves(p, sq, RookOffsets[:], moves)
		}
	}
	return moves
}

func genPawnMoves(p *position.Position, from Square, moves *moveslice.MoveSlice) {
	side := p.SideToMove()
	forward := North
	startRank := 1
	promRank := 7
	if side == Black {
		forward = South
		startRank = 6
		promRank = 0
	}

	one, ok := from.Offset(forward)
	if ok && p.PieceAt(one).IsNone() {
		emitPawnMove(from, one, promRank, moves)
		if from.Rank() == startRank {
			two, ok2 := one.Offset(forward)
			if ok2 && p.PieceAt(two).IsNone() {
				moves.PushBack(Move{From: from, To: two, Promotion: PtNone})
			}
		}
	}

	captureOffsets := [2]int{forward + East, forward + West}
	for _, off := range captureOffsets {
		to, ok := from.Offset(off)
		if !ok {
			continue
		}
		target := p.PieceAt(to)
		if to == p.EnPassantSquare() && target.IsNone() {
			moves.PushBack(Move{From: from, To: to, Promotion: PtNone})
			continue
		}
		if !target.IsNone() && target.Color != side {
			emitPawnMove(from, to, promRank, moves)
		}
	}
}

func emitPawnMove(from, to Square, promRank int, moves *moveslice.MoveSlice) {
	if to.Rank() == promRank {
		for _, pt := range promotionOrder {
			moves.PushBack(Move{From: from, To: to, Promotion: pt})
		}
		return
	}
	moves.PushBack(Move{From: from, To: to, Promotion: PtNone})
}

func genStepMoves(p *position.Position, from Square, offsets []int, moves *moveslice.MoveSlice) {
	side := p.SideToMove()
	for _, off := range offsets {
		to, ok := from.Offset(off)
		if !ok {
			continue
		}
		target := p.PieceAt(to)
		if target.IsNone() || target.Color != side {
			moves.PushBack(Move{From: from, To: to, Promotion: PtNone})
		}
	}
}

func genSlideMoves(p *position.Position, from Square, offsets []int, moves *moveslice.MoveSlice) {
	side := p.SideToMove()
	for _, dir := range offsets {
		sq := from
		for {
			to, ok := sq.Offset(dir)
			if !ok {
				break
			}
			sq = to
			target := p.PieceAt(to)
			if target.IsNone() {
				moves.PushBack(Move{From: from, To: to, Promotion: PtNone})
				continue
			}
			if target.Color != side {
				moves.PushBack(Move{From: from, To: to, Promotion: PtNone})
			}
			break
		}
	}
}

func genCastlingMoves(p *position.Position, kingSq Square, moves *moveslice.MoveSlice) {
	side := p.SideToMove()
	rights := p.CastlingRights()

	tryCastle := func(right CastlingRights, rookFile int, betweenFiles []int, toFile int) {
		if rights&right == 0 {
			return
		}
		rank := kingSq.Rank()
		for _, f := range betweenFiles {
			if !p.PieceAt(SquareOf(f, rank)).IsNone() {
				return
			}
		}
		rook := p.PieceAt(SquareOf(rookFile, rank))
		if rook.Type != Rook || rook.Color != side {
			return
		}
		to := SquareOf(toFile, rank)
		moves.PushBack(Move{From: kingSq, To: to, Promotion: PtNone})
	}

	if side == White {
		tryCastle(CastleWhiteKing, 7, []int{5, 6}, 6)
		tryCastle(CastleWhiteQueen, 0, []int{1, 2, 3}, 2)
	} else {
		tryCastle(CastleBlackKing, 7, []int{5, 6}, 6)
		tryCastle(CastleBlackQueen, 0, []int{1, 2, 3}, 2)
	}
}

// IsInCheck reports whether side's king is currently attacked.
func IsInCheck(p *position.Position, side Color) bool {
	return p.IsSquareAttacked(p.KingSquare(side), side.Other())
}

// LegalMoves filters PseudoLegalMoves down to moves that do not leave
// the mover's own king attacked, applying the extra castling-through-
// check rule (the king may not start, cross, or land on an attacked
// square).
func LegalMoves(p *position.Position) *moveslice.MoveSlice {
	pseudo := PseudoLegalMoves(p)
	legal := moveslice.NewMoveSlice(pseudo.Len())
	side := p.SideToMove()

	for i := 0; i < pseudo.Len(); i++ {
		mv := pseudo.At(i)
		if isCastlingMove(p, mv) && !castlingPathIsSafe(p, mv, side) {
			continue
		}
		undo, err := p.MakeMove(mv)
		if err != nil {
			continue
		}
		inCheck := p.IsSquareAttacked(p.KingSquare(side), side.Other())
		p.UnmakeMove(mv, undo)
		if !inCheck {
			legal.PushBack(mv)
		}
	}
	return legal
}

func isCastlingMove(p *position.Position, mv Move) bool {
	pc := p.PieceAt(mv.From)
	return pc.Type == King && mv.From.Rank() == mv.To.Rank() && absInt(mv.From.File()-mv.To.File()) == 2
}

func castlingPathIsSafe(p *position.Position, mv Move, side Color) bool {
	by := side.Other()
	if p.IsSquareAttacked(mv.From, by) {
		return false
	}
	step := East
	if mv.To.File() < mv.From.File() {
		step = West
	}
	crossing, _ := mv.From.Offset(step)
	if p.IsSquareAttacked(crossing, by) {
		return false
	}
	if p.IsSquareAttacked(mv.To, by) {
		return false
	}
	return true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// NoisyMoves returns the subset of legal moves that capture or promote,
// for use by quiescence search.
func NoisyMoves(p *position.Position) *moveslice.MoveSlice {
	legal := LegalMoves(p)
	noisy := moveslice.NewMoveSlice(legal.Len())
	for i := 0; i < legal.Len(); i++ {
		mv := legal.At(i)
		if IsNoisy(p, mv) {
			noisy.PushBack(mv)
		}
	}
	return noisy
}

// IsNoisy reports whether mv captures (including en-passant) or
// promotes in position p.
func IsNoisy(p *position.Position, mv Move) bool {
	if mv.Promotion != PtNone {
		return true
	}
	if !p.PieceAt(mv.To).IsNone() {
		return true
	}
	pc := p.PieceAt(mv.From)
	return pc.Type == Pawn && mv.To == p.EnPassantSquare()
}

// Status reports whether the side to move is checkmated, stalemated, or
// the game is ongoing.
func Status(p *position.Position) GameStatus {
	if LegalMoves(p).Len() > 0 {
		return Ongoing
	}
	if IsInCheck(p, p.SideToMove()) {
		return Checkmate
	}
	return Stalemate
}
