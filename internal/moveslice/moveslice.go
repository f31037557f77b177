//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package moveslice provides helper functionality for slices of type
// Move (chess moves), used throughout move generation and search as a
// lightweight, allocation-friendly alternative to ad hoc []Move use.
package moveslice

import (
	. "github.com/tnoack/chessforge/internal/types"
)

// MoveSlice represents a data structure (go slice) for Move.
type MoveSlice []Move

// NewMoveSlice creates a new move slice with the given capacity and 0
// elements. Identical to MoveSlice(make([]Move, 0, cap)).
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored in the slice.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// PushBack appends an element at the end of the slice.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// At returns the move at index i without removing it. Panics if out of
// bounds.
func (ms *MoveSlice) At(i int) Move {
	if len(*ms) == 0 || i < 0 || i >= len(*ms) {
		panic("MoveSlice: index out of bounds")
	}
	return (*ms)[i]
}

// Set puts a move at index i. Panics if out of bounds.
func (ms *MoveSlice) Set(i int, move Move) {
	if len(*ms) == 0 || i < 0 || i >= len(*ms) {
		panic("MoveSlice: index out of bounds")
	}
	(*ms)[i] = move
}
