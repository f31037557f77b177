//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package position represents a chess position as a 0x88 piece board
// with incremental state (side to move, castling rights, en-passant
// target, clocks, Zobrist hash) and reversible move application.
//
// Create a new instance with NewPosition() for the start position or
// NewPositionFen(fen) to set up a specific position.
package position

import (
	"fmt"

	"github.com/op/go-logging"

	myLogging "github.com/tnoack/chessforge/internal/logging"
	. "github.com/tnoack/chessforge/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// StartFen is the canonical FEN string for the initial chess position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Key is a 64-bit Zobrist fingerprint of a position.
type Key uint64

// Position holds the full state of a chess game at a single ply,
// maintained incrementally across MakeMove/UnmakeMove.
type Position struct {
	squares         [SqLength]Piece
	sideToMove      Color
	castlingRights  CastlingRights
	enPassant       Square
	halfMoveClock   int
	fullMoveNumber  int
	hash            Key
	kingSquare      [ColorLength]Square
}

// MoveUndo is produced by MakeMove and consumed by UnmakeMove to
// restore a position exactly, field for field.
type MoveUndo struct {
	Captured           Piece
	CapturedSquare     Square
	PrevEnPassant      Square
	PrevCastlingRights CastlingRights
	PrevHalfMoveClock  int
	PrevFullMoveNumber int
	PrevSideToMove     Color
	PrevHash           Key
	RookFrom           Square
	RookTo             Square
	MovedPiece         Piece
}

// NewPosition creates a position in the standard starting setup.
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		log.Criticalf("start FEN did not parse: %s", err)
		panic(err)
	}
	return p
}

// NewPositionFen creates a position from a FEN string. Returns an
// error and a nil position if the FEN is syntactically or semantically
// invalid (see fen.go).
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	if err := p.setupFromFen(fen); err != nil {
		log.Errorf("fen for position setup not valid: %s", err)
		return nil, err
	}
	return p, nil
}

// SideToMove returns the color to move next.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the current castling rights mask.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant target square, or
// NoSquare if none is set.
func (p *Position) EnPassantSquare() Square { return p.enPassant }

// HalfMoveClock returns the 50-move-rule half move counter.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the current full move number.
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// Hash returns the current Zobrist hash.
func (p *Position) Hash() Key { return p.hash }

// PieceAt returns the piece on sq, or PieceNone if the square is empty.
// sq is not range-checked: callers only ever query on-board squares,
// and an off-board 0x88 index returns an unused slot.
func (p *Position) PieceAt(sq Square) Piece {
	return p.squares[sq]
}

// KingSquare returns the square of color's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

func (p *Position) setPiece(sq Square, pc Piece) {
	p.squares[sq] = pc
	if pc.Type == King {
		p.kingSquare[pc.Color] = sq
	}
}

func (p *Position) clearPiece(sq Square) {
	p.squares[sq] = PieceNone
}

// Clone returns a deep copy of the position, for callers that want a
// scratch position instead of make/unmake on the live one.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

func (p *Position) String() string {
	return fmt.Sprintf("FEN: %s", p.Fen())
}

// recomputeHash rebuilds the Zobrist hash from scratch. Used by FEN
// setup; tests check incremental maintenance against computeHash.
func (p *Position) recomputeHash() Key {
	return computeHash(p)
}
