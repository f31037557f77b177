//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareAlgebraicRoundTrip(t *testing.T) {
	sq, ok := SquareFromAlgebraic("e2")
	assert.True(t, ok)
	assert.EqualValues(t, 0x14, sq)
	assert.Equal(t, "e2", sq.String())
}

func TestSquareFromAlgebraicRejectsInvalid(t *testing.T) {
	for _, s := range []string{"i9", "e0", "e22", "", "a"} {
		_, ok := SquareFromAlgebraic(s)
		assert.False(t, ok, s)
	}
}

func TestSquareIsValidRejectsOffboard(t *testing.T) {
	a1, _ := SquareFromAlgebraic("a1")
	off, ok := a1.Offset(West)
	assert.False(t, ok)
	assert.False(t, off.IsValid())

	a2, ok := a1.Offset(North)
	assert.True(t, ok)
	assert.EqualValues(t, 16, a2)
}

func TestMoveUCIRoundTrip(t *testing.T) {
	m, ok := MoveFromUCI("e7e8q")
	assert.True(t, ok)
	assert.Equal(t, "e7e8q", m.String())
	assert.Equal(t, Queen, m.Promotion)

	_, ok = MoveFromUCI("e2e")
	assert.False(t, ok)
	_, ok = MoveFromUCI("e2e4qq")
	assert.False(t, ok)
	_, ok = MoveFromUCI("e2e4x")
	assert.False(t, ok)

	null, ok := MoveFromUCI("0000")
	assert.True(t, ok)
	assert.True(t, null.IsNone())
}

func TestPieceFenChar(t *testing.T) {
	p, ok := PieceFromFenChar('Q')
	assert.True(t, ok)
	assert.Equal(t, White, p.Color)
	assert.Equal(t, Queen, p.Type)
	assert.Equal(t, "Q", p.FenChar())

	p, ok = PieceFromFenChar('n')
	assert.True(t, ok)
	assert.Equal(t, Black, p.Color)
	assert.Equal(t, Knight, p.Type)

	_, ok = PieceFromFenChar('x')
	assert.False(t, ok)
}

func TestCastlingRightsRevoke(t *testing.T) {
	r := CastleAll
	assert.True(t, r.HasKingside(White))
	r.RevokeKingside(White)
	assert.False(t, r.HasKingside(White))
	assert.True(t, r.HasQueenside(White))
	r.RevokeAll(Black)
	assert.False(t, r.HasKingside(Black))
	assert.False(t, r.HasQueenside(Black))
	assert.Equal(t, "Q", r.String())
}
