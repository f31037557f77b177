//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package movegen

import "github.com/tnoack/chessforge/internal/position"

// Perft counts the number of leaf nodes reachable from p at the given
// depth by exhaustive legal move enumeration, restoring p to its
// original state before returning. Used to validate move generation
// against known node counts.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	legal := LegalMoves(p)
	if depth == 1 {
		return uint64(legal.Len())
	}
	var nodes uint64
	for i := 0; i < legal.Len(); i++ {
		mv := legal.At(i)
		undo, err := p.MakeMove(mv)
		if err != nil {
			continue
		}
		nodes += Perft(p, depth-1)
		p.UnmakeMove(mv, undo)
	}
	return nodes
}
