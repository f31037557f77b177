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

	"github.com/tnoack/chessforge/internal/position"
)

func TestSearchToDepthReturnsLegalMove(t *testing.T) {
	p, err := position.NewPositionFen(position.StartFen)
	assert.NoError(t, err)

	s := NewSearch()
	result := s.SearchToDepth(p, DefaultLimits(2))

	assert.NotEmpty(t, result.BestMoves)
	assert.Greater(t, result.Nodes, uint64(0))
}

func TestSearchToDepthFindsMateInOne(t *testing.T) {
	p, err := position.NewPositionFen("1k6/8/8/8/7Q/8/PPP5/1K1Bq3 b - - 0 1")
	assert.NoError(t, err)

	s := NewSearch()
	result := s.SearchToDepth(p, DefaultLimits(3))

	assert.Contains(t, result.BestMoves, mustMove("e1d1"))
	assert.True(t, result.Score.IsMateScore())
}

func TestNewGameClearsTranspositionTable(t *testing.T) {
	p, err := position.NewPositionFen(position.StartFen)
	assert.NoError(t, err)

	s := NewSearch()
	s.SearchToDepth(p, DefaultLimits(2))
	assert.Greater(t, s.tt.Len(), uint64(0))

	s.NewGame()
	assert.Equal(t, uint64(0), s.tt.Len())
}
