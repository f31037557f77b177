//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/tnoack/chessforge/internal/types"
)

func TestMakeUnmakeRoundTrip(t *testing.T) {
	p := NewPosition()
	before := p.Fen()
	beforeHash := p.Hash()

	mv := Move{From: mustSquare("e2"), To: mustSquare("e4"), Promotion: PtNone}
	undo, err := p.MakeMove(mv)
	assert.NoError(t, err)
	assert.NotEqual(t, before, p.Fen())
	assert.Equal(t, p.Hash(), computeHash(p), "hash must be correct after make")

	p.UnmakeMove(mv, undo)
	assert.Equal(t, before, p.Fen())
	assert.Equal(t, beforeHash, p.Hash())
}

func TestMakeMoveEnPassant(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	mv := Move{From: mustSquare("e5"), To: mustSquare("d6"), Promotion: PtNone}
	undo, err := p.MakeMove(mv)
	assert.NoError(t, err)
	assert.True(t, p.PieceAt(mustSquare("d5")).IsNone(), "captured pawn must be removed")
	assert.Equal(t, Piece{Color: White, Type: Pawn}, p.PieceAt(mustSquare("d6")))
	assert.Equal(t, p.Hash(), computeHash(p))
	p.UnmakeMove(mv, undo)
	assert.Equal(t, Piece{Color: Black, Type: Pawn}, p.PieceAt(mustSquare("d5")))
	assert.True(t, p.PieceAt(mustSquare("d6")).IsNone())
}

func TestMakeMoveCastlingMovesRook(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	mv := Move{From: mustSquare("e1"), To: mustSquare("g1"), Promotion: PtNone}
	undo, err := p.MakeMove(mv)
	assert.NoError(t, err)
	assert.Equal(t, Piece{Color: White, Type: Rook}, p.PieceAt(mustSquare("f1")))
	assert.True(t, p.PieceAt(mustSquare("h1")).IsNone())
	assert.Equal(t, CastleNone, p.CastlingRights()&(CastleWhiteKing|CastleWhiteQueen))
	assert.Equal(t, p.Hash(), computeHash(p), "incremental hash must match a from-scratch recompute after castling")
	p.UnmakeMove(mv, undo)
	assert.Equal(t, Piece{Color: White, Type: Rook}, p.PieceAt(mustSquare("h1")))
	assert.True(t, p.PieceAt(mustSquare("f1")).IsNone())
}

func TestMakeMovePromotion(t *testing.T) {
	p, err := NewPositionFen("8/P7/8/8/8/8/8/4K2k w - - 0 1")
	assert.NoError(t, err)
	mv := Move{From: mustSquare("a7"), To: mustSquare("a8"), Promotion: Queen}
	undo, err := p.MakeMove(mv)
	assert.NoError(t, err)
	assert.Equal(t, Piece{Color: White, Type: Queen}, p.PieceAt(mustSquare("a8")))
	assert.Equal(t, p.Hash(), computeHash(p), "incremental hash must match a from-scratch recompute after promotion")
	p.UnmakeMove(mv, undo)
	assert.Equal(t, Piece{Color: White, Type: Pawn}, p.PieceAt(mustSquare("a7")))
	assert.True(t, p.PieceAt(mustSquare("a8")).IsNone())
}

func TestMakeMoveRejectsWrongSideToMove(t *testing.T) {
	p := NewPosition()
	mv := Move{From: mustSquare("e7"), To: mustSquare("e5"), Promotion: PtNone}
	_, err := p.MakeMove(mv)
	assert.Error(t, err)
	assert.Equal(t, StartFen, p.Fen(), "a rejected move must leave the position unchanged")
}

func mustSquare(s string) Square {
	sq, ok := SquareFromAlgebraic(s)
	if !ok {
		panic("bad test square " + s)
	}
	return sq
}
