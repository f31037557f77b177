//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	"time"

	"github.com/tnoack/chessforge/internal/config"
)

// Limits bounds a single search call. Only depth and a wall-clock move
// budget are supported; the teacher engine's time-control fields
// (wtime/btime/increments, ponder, infinite, mate search) have no
// counterpart here since the UCI shim only forwards "depth" (see the
// protocol surface description).
type Limits struct {
	// Depth is the maximum iterative-deepening depth to reach. Zero
	// means "use the configured default".
	Depth int
	// MoveTime caps wall-clock time for the whole call. Zero means no
	// time limit; iterative deepening stops at Depth.
	MoveTime time.Duration
}

// DefaultLimits builds Limits for a given depth, with the configured
// default move time as a wall-clock safety net. The deadline is only
// checked before each new iteration; an iteration already started runs
// to completion.
func DefaultLimits(depth int) Limits {
	return Limits{
		Depth:    depth,
		MoveTime: time.Duration(config.Settings.Search.DefaultMoveTime) * time.Millisecond,
	}
}
