//
// chessforge - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tnoack/chessforge/internal/position"
	. "github.com/tnoack/chessforge/internal/types"
)

func TestMaterialEvaluatorWhiteUpAPawn(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/P7/4K3 w - - 0 1")
	assert.NoError(t, err)
	eval := NewMaterialEvaluator()
	assert.Equal(t, Value(100), eval.Evaluate(p))
}

func TestMaterialEvaluatorIsSideToMoveRelative(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/P7/4K3 b - - 0 1")
	assert.NoError(t, err)
	eval := NewMaterialEvaluator()
	assert.Equal(t, Value(-100), eval.Evaluate(p))
}

func TestMaterialEvaluatorEqualMaterialIsZero(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/1p6/8/8/8/P7/4K3 w - - 0 1")
	assert.NoError(t, err)
	eval := NewMaterialEvaluator()
	assert.Equal(t, Value(0), eval.Evaluate(p))
}
