//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package transpositiontable implements a fixed-size, power-of-two
// transposition table caching prior search results by Zobrist key. The
// TtTable type is not thread safe and must be synchronized externally
// if shared, though this engine core never does so (search is strictly
// single-threaded).
package transpositiontable

import (
	"math"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/tnoack/chessforge/internal/logging"
	"github.com/tnoack/chessforge/internal/position"
	. "github.com/tnoack/chessforge/internal/types"
)

var out = message.NewPrinter(language.German)

const (
	// MB is one megabyte in bytes.
	MB = 1024 * 1024
	// MaxSizeInMB is the largest table size this engine will allocate.
	MaxSizeInMB = 65_536
)

// TtTable is the transposition table. Create with NewTtTable.
type TtTable struct {
	log             *logging.Logger
	data            []TtEntry
	maxEntries      uint64
	hashKeyMask     uint64
	numberOfEntries uint64
	Stats           TtStats
}

// TtStats holds usage statistics for diagnostics and UCI "info" output.
type TtStats struct {
	NumberOfPuts   uint64
	NumberOfProbes uint64
	NumberOfHits   uint64
	NumberOfMisses uint64
}

// NewTtTable creates a table sized to the largest power-of-two entry
// count that fits within sizeInMByte megabytes.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize reallocates the table, clearing all entries.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte <= 0 {
		tt.maxEntries = 0
		tt.hashKeyMask = 0
		tt.data = nil
		tt.numberOfEntries = 0
		return
	}

	sizeInByte := uint64(sizeInMByte) * MB
	tt.maxEntries = 1 << uint64(math.Floor(math.Log2(float64(sizeInByte/TtEntrySize))))
	tt.hashKeyMask = tt.maxEntries - 1
	tt.data = make([]TtEntry, tt.maxEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}

	tt.log.Info(out.Sprintf("TT size %d MB, capacity %d entries", sizeInMByte, tt.maxEntries))
}

// Probe returns the entry for key, or nil if the table is empty or the
// slot holds a different position.
func (tt *TtTable) Probe(key position.Key) *TtEntry {
	if tt.maxEntries == 0 {
		return nil
	}
	tt.Stats.NumberOfProbes++
	e := &tt.data[tt.index(key)]
	if e.Bound != BoundNone && e.Key == key {
		tt.Stats.NumberOfHits++
		return e
	}
	tt.Stats.NumberOfMisses++
	return nil
}

// Usable reports whether a probed entry can short-circuit a search at
// currentDepth within window [alpha, beta], per the bound semantics of
// section 4.6: Exact always usable, Lower usable iff score >= beta,
// Upper usable iff score <= alpha.
func (e *TtEntry) Usable(currentDepth int, alpha, beta Value) bool {
	if e.Depth < currentDepth {
		return false
	}
	switch e.Bound {
	case BoundExact:
		return true
	case BoundLower:
		return e.Score >= beta
	case BoundUpper:
		return e.Score <= alpha
	default:
		return false
	}
}

// Put stores an entry using depth-preferred replacement: an existing
// entry is only overwritten if the incoming depth is greater than or
// equal to its depth.
func (tt *TtTable) Put(key position.Key, depth int, score Value, bound Bound, move Move) {
	if tt.maxEntries == 0 {
		return
	}
	tt.Stats.NumberOfPuts++
	e := &tt.data[tt.index(key)]
	if e.Bound == BoundNone {
		tt.numberOfEntries++
	} else if depth < e.Depth {
		return
	}
	e.Key = key
	e.Depth = depth
	e.Score = score
	e.Bound = bound
	e.Move = move
}

// Clear empties the table.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Len returns the number of occupied slots.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// Hashfull returns how full the table is, in permill, as reported by
// the UCI "info hashfull" field.
func (tt *TtTable) Hashfull() int {
	if tt.maxEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxEntries)
}

func (tt *TtTable) index(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}

func (tt *TtTable) String() string {
	return out.Sprintf("TT: capacity %d entries, %d occupied (%d%%), puts %d probes %d hits %d misses %d",
		tt.maxEntries, tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.NumberOfPuts, tt.Stats.NumberOfProbes, tt.Stats.NumberOfHits, tt.Stats.NumberOfMisses)
}
