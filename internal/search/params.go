//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	. "github.com/tnoack/chessforge/internal/types"
)

// Result is what a search returns: the set of root moves tying the
// best score found (so the caller can break ties externally), the
// score of that set, and the total node count across the search.
type Result struct {
	BestMoves []Move
	Score     Value
	Nodes     uint64
}

// BestMove picks the first move of the tying set, or NoMove if the set
// is empty (terminal position, see section 7 of the design).
func (r Result) BestMove() Move {
	if len(r.BestMoves) == 0 {
		return NoMove
	}
	return r.BestMoves[0]
}
