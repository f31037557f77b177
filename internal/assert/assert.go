//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package assert provides lightweight invariant checks for use in
// non-production code paths (tests and debug builds). A failed
// assertion panics rather than returning an error, since it signals a
// programming mistake, not a recoverable runtime condition.
package assert

import "fmt"

// DEBUG gates whether Assert does anything. Callers that compute an
// expensive condition should still guard the call site with
// `if assert.DEBUG { ... }` since Go evaluates Assert's arguments
// regardless of DEBUG.
const DEBUG = false

// Assert panics with a formatted message if test is false.
func Assert(test bool, format string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(format, a...))
	}
}
