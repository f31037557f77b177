//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	"fmt"

	"github.com/tnoack/chessforge/internal/assert"
	. "github.com/tnoack/chessforge/internal/types"
)

// MakeMove applies mv to the position and returns a MoveUndo sufficient
// to reverse every effect with UnmakeMove. MakeMove validates the move
// against the current side to move before mutating anything, so a
// rejected move leaves the position unchanged (spec section 4.4).
func (p *Position) MakeMove(mv Move) (MoveUndo, error) {
	fromPc := p.squares[mv.From]
	if fromPc.IsNone() {
		return MoveUndo{}, fmt.Errorf("no piece on %s", mv.From)
	}
	if fromPc.Color != p.sideToMove {
		return MoveUndo{}, fmt.Errorf("piece on %s does not belong to side to move", mv.From)
	}

	toPc := p.squares[mv.To]
	wasCapture := !toPc.IsNone()
	isEnPassant := fromPc.Type == Pawn && mv.To == p.enPassant && !wasCapture
	isCastle := fromPc.Type == King && mv.From.Rank() == mv.To.Rank() && abs(mv.From.File()-mv.To.File()) == 2

	var rookFrom, rookTo Square
	if isCastle {
		var rookFromFile, rookToFile int
		switch mv.To.File() {
		case 6:
			rookFromFile, rookToFile = 7, 5
		case 2:
			rookFromFile, rookToFile = 0, 3
		default:
			return MoveUndo{}, fmt.Errorf("invalid castling target %s", mv.To)
		}
		rank := mv.From.Rank()
		rookFrom = SquareOf(rookFromFile, rank)
		rookTo = SquareOf(rookToFile, rank)
		rook := p.squares[rookFrom]
		if rook.Type != Rook || rook.Color != fromPc.Color {
			return MoveUndo{}, fmt.Errorf("no rook for castling on %s", rookFrom)
		}
	} else {
		rookFrom, rookTo = NoSquare, NoSquare
	}

	movedPiece := fromPc
	if mv.Promotion != PtNone {
		movedPiece = Piece{Color: fromPc.Color, Type: mv.Promotion}
	}

	undo := MoveUndo{
		Captured:           PieceNone,
		CapturedSquare:     NoSquare,
		PrevEnPassant:      p.enPassant,
		PrevCastlingRights: p.castlingRights,
		PrevHalfMoveClock:  p.halfMoveClock,
		PrevFullMoveNumber: p.fullMoveNumber,
		PrevSideToMove:     p.sideToMove,
		PrevHash:           p.hash,
		RookFrom:           rookFrom,
		RookTo:             rookTo,
		MovedPiece:         fromPc,
	}

	// --- from here on the move is known valid: mutate ---

	// Incremental Zobrist update (spec section 4.4 step 8): XOR out every
	// piece/castling/en-passant contribution as it stops applying and XOR
	// in its replacement, rather than recomputing from scratch. h starts
	// as the pre-move hash and is written back to p.hash once every term
	// has been folded in.
	h := p.hash

	p.clearPiece(mv.From)
	h ^= pieceHashKey(fromPc, mv.From)

	if isEnPassant {
		capSq, _ := mv.To.Offset(southFor(fromPc.Color))
		undo.Captured = p.squares[capSq]
		undo.CapturedSquare = capSq
		p.clearPiece(capSq)
		h ^= pieceHashKey(undo.Captured, capSq)
		wasCapture = true
	} else if wasCapture {
		undo.Captured = toPc
		undo.CapturedSquare = mv.To
		h ^= pieceHashKey(toPc, mv.To)
	}

	p.setPiece(mv.To, movedPiece)
	h ^= pieceHashKey(movedPiece, mv.To)

	if isCastle {
		rook := p.squares[rookFrom]
		p.clearPiece(rookFrom)
		p.setPiece(rookTo, rook)
		h ^= pieceHashKey(rook, rookFrom)
		h ^= pieceHashKey(rook, rookTo)
	}

	h ^= enPassantHashKey(p.enPassant)
	h ^= castlingHashKey(p.castlingRights)

	// en-passant target for the *next* move
	newEnPassant := NoSquare
	if fromPc.Type == Pawn {
		if fromPc.Color == White && mv.From.Rank() == 1 && mv.To.Rank() == 3 {
			newEnPassant, _ = mv.From.Offset(North)
		} else if fromPc.Color == Black && mv.From.Rank() == 6 && mv.To.Rank() == 4 {
			newEnPassant, _ = mv.From.Offset(South)
		}
	}
	p.enPassant = newEnPassant

	updateCastlingRights(&p.castlingRights, fromPc, mv, wasCapture)

	h ^= enPassantHashKey(p.enPassant)
	h ^= castlingHashKey(p.castlingRights)
	h ^= sideToMoveHashKey()

	if fromPc.Type == Pawn || wasCapture {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	if p.sideToMove == Black {
		p.fullMoveNumber++
	}
	p.sideToMove = p.sideToMove.Other()

	p.hash = h

	return undo, nil
}

// UnmakeMove reverses the effect of MakeMove(mv), restoring p to
// byte-for-byte identity with the position before the move.
func (p *Position) UnmakeMove(mv Move, undo MoveUndo) {
	p.sideToMove = undo.PrevSideToMove
	p.halfMoveClock = undo.PrevHalfMoveClock
	p.fullMoveNumber = undo.PrevFullMoveNumber
	p.castlingRights = undo.PrevCastlingRights
	p.enPassant = undo.PrevEnPassant
	p.hash = undo.PrevHash

	if undo.RookFrom != NoSquare {
		rook := p.squares[undo.RookTo]
		p.clearPiece(undo.RookTo)
		p.setPiece(undo.RookFrom, rook)
	}

	if assert.DEBUG {
		assert.Assert(p.squares[mv.From].IsNone(), "no piece on square %s before unmake restores it", mv.From)
	}

	p.clearPiece(mv.To)
	p.setPiece(mv.From, undo.MovedPiece)

	if undo.CapturedSquare != NoSquare {
		p.setPiece(undo.CapturedSquare, undo.Captured)
	}
}

func southFor(c Color) int {
	if c == White {
		return South
	}
	return North
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func updateCastlingRights(rights *CastlingRights, moved Piece, mv Move, wasCapture bool) {
	if moved.Type == King {
		rights.RevokeAll(moved.Color)
	}
	if moved.Type == Rook {
		switch {
		case moved.Color == White && mv.From.File() == 0 && mv.From.Rank() == 0:
			rights.RevokeQueenside(White)
		case moved.Color == White && mv.From.File() == 7 && mv.From.Rank() == 0:
			rights.RevokeKingside(White)
		case moved.Color == Black && mv.From.File() == 0 && mv.From.Rank() == 7:
			rights.RevokeQueenside(Black)
		case moved.Color == Black && mv.From.File() == 7 && mv.From.Rank() == 7:
			rights.RevokeKingside(Black)
		}
	}
	if wasCapture {
		switch {
		case mv.To.File() == 0 && mv.To.Rank() == 0:
			rights.RevokeQueenside(White)
		case mv.To.File() == 7 && mv.To.Rank() == 0:
			rights.RevokeKingside(White)
		case mv.To.File() == 0 && mv.To.Rank() == 7:
			rights.RevokeQueenside(Black)
		case mv.To.File() == 7 && mv.To.Rank() == 7:
			rights.RevokeKingside(Black)
		}
	}
}
