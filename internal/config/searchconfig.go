//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package config

// searchConfiguration holds the configuration for a search instance.
// Only the toggles this engine actually implements are carried here;
// the teacher's null-move/LMR/futility/killer-move/opening-book/pawn-
// cache toggles have no implementation behind them in this core and
// are not represented.
type searchConfiguration struct {
	// Iterative deepening
	MaxDepth         int
	DefaultMoveTime  int // milliseconds, used when no explicit limit is given

	// Quiescence search
	UseQuiescence bool
	MaxQuiescenceDepth int

	// Move ordering / search algorithm
	UsePVS bool

	// Transposition table
	UseTT  bool
	TTSize int // megabytes
}

// sets defaults which may be overwritten by the config file.
func init() {
	Settings.Search.MaxDepth = 6
	Settings.Search.DefaultMoveTime = 5000

	Settings.Search.UseQuiescence = true
	Settings.Search.MaxQuiescenceDepth = 8

	Settings.Search.UsePVS = true

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 64
}

// set defaults for configurations not available from the config file.
func setupSearch() {
}
