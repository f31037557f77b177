//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/tnoack/chessforge/internal/types"
)

func TestSetPositionFENAppliesMoves(t *testing.T) {
	e := NewEngine()
	err := e.SetPositionFEN(
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		[]string{"e2e4", "e7e5"},
	)
	assert.NoError(t, err)
	assert.Equal(t, Black, e.Position().SideToMove())
}

func TestSetPositionFENRejectsIllegalMove(t *testing.T) {
	e := NewEngine()
	err := e.SetPositionFEN(
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		[]string{"e2e5"},
	)
	assert.Error(t, err)
}

func TestSetPositionFENRejectsBadFEN(t *testing.T) {
	e := NewEngine()
	err := e.SetPositionFEN("not a fen", nil)
	assert.Error(t, err)
}

func TestSearchToDepthReturnsUCIMove(t *testing.T) {
	e := NewEngine()
	e.SetStartPos()
	mv, nodes, err := e.SearchToDepth(2)
	assert.NoError(t, err)
	assert.NotEqual(t, "0000", mv)
	assert.Greater(t, nodes, uint64(0))
}

func TestSearchToDepthDeterministicWithSeed(t *testing.T) {
	e1 := NewEngineSeeded(42)
	e2 := NewEngineSeeded(42)
	mv1, _, _ := e1.SearchToDepth(2)
	mv2, _, _ := e2.SearchToDepth(2)
	assert.Equal(t, mv1, mv2)
}

func TestGameStatusReportsCheckmate(t *testing.T) {
	e := NewEngine()
	err := e.SetPositionFEN(
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 2 3",
		nil,
	)
	assert.NoError(t, err)
	assert.Equal(t, Checkmate, e.GameStatus())
}

func TestNewGameResetsPosition(t *testing.T) {
	e := NewEngine()
	_ = e.SetPositionFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1", nil)
	e.NewGame()
	assert.Equal(t, White, e.Position().SideToMove())
}
