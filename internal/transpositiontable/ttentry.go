//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package transpositiontable

import (
	"github.com/tnoack/chessforge/internal/position"
	. "github.com/tnoack/chessforge/internal/types"
)

// Bound records whether a stored score is exact or was cut off by
// alpha-beta pruning.
type Bound int8

const (
	// BoundNone marks an empty entry.
	BoundNone Bound = iota
	// BoundExact is a fully resolved score.
	BoundExact
	// BoundLower is a fail-high cutoff: the true score is >= the stored
	// value.
	BoundLower
	// BoundUpper is a fail-low cutoff: the true score is <= the stored
	// value.
	BoundUpper
)

// TtEntrySize is the size in bytes of each TtEntry on a 64-bit
// platform, used to compute how many entries fit in a requested table
// size.
const TtEntrySize = 24

// TtEntry is a single slot in the transposition table.
type TtEntry struct {
	Key   position.Key
	Depth int
	Score Value
	Bound Bound
	Move  Move
}
