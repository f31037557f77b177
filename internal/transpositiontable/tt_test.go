//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tnoack/chessforge/internal/position"
	. "github.com/tnoack/chessforge/internal/types"
)

func TestPutAndProbeRoundTrip(t *testing.T) {
	tt := NewTtTable(1)
	key := position.Key(12345)
	mv := Move{From: 0, To: 1, Promotion: PtNone}
	tt.Put(key, 4, 150, BoundExact, mv)

	e := tt.Probe(key)
	assert.NotNil(t, e)
	assert.Equal(t, Value(150), e.Score)
	assert.Equal(t, BoundExact, e.Bound)
	assert.Equal(t, mv, e.Move)
}

func TestProbeMissReturnsNil(t *testing.T) {
	tt := NewTtTable(1)
	assert.Nil(t, tt.Probe(position.Key(999)))
}

func TestDepthPreferredReplacement(t *testing.T) {
	tt := NewTtTable(1)
	// force a collision by finding two keys that hash to the same slot
	key1 := position.Key(1)
	key2 := position.Key(1) + position.Key(tt.maxEntries)

	tt.Put(key1, 5, 100, BoundExact, NoMove)
	tt.Put(key2, 2, 200, BoundExact, NoMove)
	// shallower entry must not replace the deeper one
	e := tt.Probe(key1)
	assert.NotNil(t, e)
	assert.Equal(t, Value(100), e.Score)

	tt.Put(key2, 9, 300, BoundExact, NoMove)
	e = tt.Probe(key2)
	assert.NotNil(t, e)
	assert.Equal(t, Value(300), e.Score)
}

func TestDepthPreferredReplacementSameKey(t *testing.T) {
	tt := NewTtTable(1)
	key := position.Key(42)

	tt.Put(key, 8, 100, BoundExact, NoMove)
	// a shallower re-search of the very same position must not evict
	// the deeper, more valuable result already stored for it
	tt.Put(key, 3, 200, BoundExact, NoMove)

	e := tt.Probe(key)
	assert.NotNil(t, e)
	assert.Equal(t, 8, e.Depth)
	assert.Equal(t, Value(100), e.Score)

	tt.Put(key, 8, 300, BoundExact, NoMove)
	e = tt.Probe(key)
	assert.NotNil(t, e)
	assert.Equal(t, Value(300), e.Score, "equal depth must still overwrite")
}

func TestUsableBoundSemantics(t *testing.T) {
	exact := &TtEntry{Depth: 4, Score: 50, Bound: BoundExact}
	assert.True(t, exact.Usable(4, -100, 100))

	lower := &TtEntry{Depth: 4, Score: 60, Bound: BoundLower}
	assert.True(t, lower.Usable(4, -100, 50))
	assert.False(t, lower.Usable(4, -100, 100))

	upper := &TtEntry{Depth: 4, Score: -60, Bound: BoundUpper}
	assert.True(t, upper.Usable(4, -50, 100))
	assert.False(t, upper.Usable(4, 0, 100))

	assert.False(t, exact.Usable(5, -100, 100), "shallower stored depth is not usable")
}
