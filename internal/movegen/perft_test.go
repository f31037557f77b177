//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tnoack/chessforge/internal/position"
	. "github.com/tnoack/chessforge/internal/types"
)

func TestPerftStartPosition(t *testing.T) {
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		p := position.NewPosition()
		got := Perft(p, c.depth)
		assert.Equal(t, c.nodes, got, "perft(%d)", c.depth)
		assert.Equal(t, position.StartFen, p.Fen(), "position must be restored after perft")
	}
}

func TestLegalMovesStartPositionCount(t *testing.T) {
	p := position.NewPosition()
	assert.Equal(t, 20, LegalMoves(p).Len())
}

func TestCastlingBlockedWhenCrossingAttackedSquare(t *testing.T) {
	// White king on e1, rook on h1, black rook on f8 attacks f1, which
	// the king would have to cross to castle kingside.
	p, err := position.NewPositionFen("k4r2/8/8/8/8/8/8/4K2R w K - 0 1")
	assert.NoError(t, err)
	legal := LegalMoves(p)
	for i := 0; i < legal.Len(); i++ {
		mv := legal.At(i)
		assert.False(t, mv.From.String() == "e1" && mv.To.String() == "g1",
			"castling through an attacked square must not be legal")
	}
}

func TestGameStatusCheckmate(t *testing.T) {
	// Fool's mate final position, white to move and mated.
	p, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 2 3")
	assert.NoError(t, err)
	assert.Equal(t, Checkmate, Status(p))
}

func TestNoisyMovesOnlyCapturesAndPromotions(t *testing.T) {
	// White queen can capture a black pawn on d2 or push quietly
	// elsewhere; a pawn on b7 can push to b8 and promote.
	p, err := position.NewPositionFen("4k3/1P6/8/8/8/8/3p4/3Q2K1 w - - 0 1")
	assert.NoError(t, err)

	noisy := NoisyMoves(p)
	assert.Greater(t, noisy.Len(), 0)
	for i := 0; i < noisy.Len(); i++ {
		assert.True(t, IsNoisy(p, noisy.At(i)))
	}

	legal := LegalMoves(p)
	assert.Greater(t, legal.Len(), noisy.Len(), "quiet moves must exist but be excluded from the noisy set")
}
