//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	"sync"

	. "github.com/tnoack/chessforge/internal/types"
)

// zobristSeed is the fixed constant SplitMix64 is seeded from so the
// key table is fully deterministic across processes and runs.
const zobristSeed uint64 = 0x9e3779b97f4a7c15

const (
	zobristPieceKinds = 12 // 2 colors x 6 piece types
	zobristSquares    = 64 // real board squares, 0..63 rank-major
)

type zobristKeys struct {
	pieceSquare    [zobristPieceKinds][zobristSquares]Key
	sideToMove     Key
	castlingRights [16]Key
	enPassantFile  [8]Key
}

var (
	zobristOnce sync.Once
	zobristBase zobristKeys
)

// splitMix64 is Sebastiano Vigna's public-domain generator, used here
// only to seed the static Zobrist key table deterministically.
type splitMix64 struct{ state uint64 }

func newSplitMix64(seed uint64) *splitMix64 {
	return &splitMix64{state: seed}
}

func (r *splitMix64) next() uint64 {
	r.state += 0x9e3779b97f4a7c15
	z := r.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func initZobrist() {
	zobristOnce.Do(func() {
		rng := newSplitMix64(zobristSeed)
		for piece := 0; piece < zobristPieceKinds; piece++ {
			for sq := 0; sq < zobristSquares; sq++ {
				zobristBase.pieceSquare[piece][sq] = Key(rng.next())
			}
		}
		for i := range zobristBase.castlingRights {
			zobristBase.castlingRights[i] = Key(rng.next())
		}
		for i := range zobristBase.enPassantFile {
			zobristBase.enPassantFile[i] = Key(rng.next())
		}
		zobristBase.sideToMove = Key(rng.next())
	})
}

// pieceZobristIndex maps a piece to its row in the piece_square table:
// 0..5 white pawn..king, 6..11 black pawn..king.
func pieceZobristIndex(pc Piece) int {
	base := int(pc.Type)
	if pc.Color == Black {
		base += 6
	}
	return base
}

// realSquareIndex maps an on-board 0x88 square to a 0..63 rank-major
// index, or -1 for an off-board square.
func realSquareIndex(sq Square) int {
	if !sq.IsValid() {
		return -1
	}
	return sq.Rank()*8 + sq.File()
}

// pieceHashKey is the XOR contribution of pc standing on sq.
func pieceHashKey(pc Piece, sq Square) Key {
	initZobrist()
	return zobristBase.pieceSquare[pieceZobristIndex(pc)][realSquareIndex(sq)]
}

// castlingHashKey is the XOR contribution of a given castling-rights mask.
func castlingHashKey(rights CastlingRights) Key {
	initZobrist()
	return zobristBase.castlingRights[rights&0x0f]
}

// enPassantHashKey is the XOR contribution of sq as the en-passant
// target, or zero if there is none.
func enPassantHashKey(sq Square) Key {
	if sq == NoSquare {
		return 0
	}
	initZobrist()
	return zobristBase.enPassantFile[sq.File()]
}

// sideToMoveHashKey is the XOR contribution toggled on every ply.
func sideToMoveHashKey() Key {
	initZobrist()
	return zobristBase.sideToMove
}

// computeHash recomputes the Zobrist key for p from scratch: the XOR
// over all occupied squares, side-to-move iff Black, the castling mask
// key, and the en-passant file key iff set. MakeMove never calls this
// directly — it updates p.hash incrementally move by move — so this
// stays the independent oracle spec section 8's Zobrist-consistency
// check diffs the incremental result against.
func computeHash(p *Position) Key {
	initZobrist()
	var h Key
	for sq := Square(0); int(sq) < SqLength; sq++ {
		if !sq.IsValid() {
			continue
		}
		pc := p.squares[sq]
		if pc.IsNone() {
			continue
		}
		idx := realSquareIndex(sq)
		h ^= zobristBase.pieceSquare[pieceZobristIndex(pc)][idx]
	}
	if p.sideToMove == Black {
		h ^= zobristBase.sideToMove
	}
	h ^= zobristBase.castlingRights[p.castlingRights&0x0f]
	if p.enPassant != NoSquare {
		h ^= zobristBase.enPassantFile[p.enPassant.File()]
	}
	return h
}
