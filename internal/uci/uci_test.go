//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package uci

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUciHandshake(t *testing.T) {
	h := NewHandler()
	out := h.Command("uci")
	assert.Contains(t, out, "id name chessforge")
	assert.Contains(t, out, "uciok")
}

func TestIsReady(t *testing.T) {
	h := NewHandler()
	assert.Contains(t, h.Command("isready"), "readyok")
}

func TestPositionStartposThenGoReturnsBestMove(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	out := h.Command("go depth 2")
	assert.True(t, strings.HasPrefix(out, "info depth 2") || strings.Contains(out, "bestmove"))
	assert.Contains(t, out, "bestmove")
}

func TestPositionFenWithMoves(t *testing.T) {
	h := NewHandler()
	out := h.Command("position fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 moves e2e4 e7e5")
	assert.Empty(t, out)
}

func TestPositionInvalidFenReportsInfoString(t *testing.T) {
	h := NewHandler()
	out := h.Command("position fen 8/8/8/8/8/8/8/8 w - - 0 1")
	assert.Contains(t, out, "info string invalid FEN")
}

func TestUnknownCommandDoesNotPanic(t *testing.T) {
	h := NewHandler()
	out := h.Command("frobnicate")
	assert.Contains(t, out, "info string")
}
