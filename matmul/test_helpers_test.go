// SPDX-License-Identifier: MIT

package matmul_test

import (
	"testing"

	"github.com/katalvlaran/dlops/matrix"
	"github.com/stretchr/testify/require"
)

// shape is one operand configuration: A is R1×C1, B is C1×C2.
type shape struct {
	name       string
	r1, c1, c2 int
}

// equivalenceShapes mixes square, rectangular, tall/wide and degenerate vectors.
var equivalenceShapes = []shape{
	{"1x1x1", 1, 1, 1},
	{"square 8", 8, 8, 8},
	{"square 17", 17, 17, 17},
	{"rect 5x9x4", 5, 9, 4},
	{"tall 33x3x2", 33, 3, 2},
	{"wide 2x3x29", 2, 3, 29},
	{"row vector", 1, 20, 1},
	{"outer product", 12, 1, 10},
}

// tilesFor returns the tile grid {1,3,7,16,max(r1,c1,c2)}.
func tilesFor(s shape) []int {
	return []int{1, 3, 7, 16, max(s.r1, s.c1, s.c2)}
}

// randPair builds a seeded A (r1×c1) and B (c1×c2) with values in [-5, 10].
func randPair[T matrix.Number](tb testing.TB, s shape, seed int64) (*matrix.Dense[T], *matrix.Dense[T]) {
	tb.Helper()
	a, err := matrix.NewDense[T](s.r1, s.c1)
	require.NoError(tb, err)
	b, err := matrix.NewDense[T](s.c1, s.c2)
	require.NoError(tb, err)
	require.NoError(tb, a.FillRandom(matrix.WithSeed(seed), matrix.WithRange(-5, 10)))
	require.NoError(tb, b.FillRandom(matrix.WithSeed(seed+1), matrix.WithRange(-5, 10)))

	return a, b
}

func filled[T matrix.Number](tb testing.TB, r, c int, v T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDenseFilled(r, c, v)
	require.NoError(tb, err)

	return m
}

func sequential[T matrix.Number](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(tb, err)
	require.NoError(tb, m.FillSequential())

	return m
}

// requireSame asserts exact equality for integers and 1e-6 closeness for floats.
func requireSame[T matrix.Number](tb testing.TB, want, got *matrix.Dense[T], msgAndArgs ...interface{}) {
	tb.Helper()
	mm, err := matrix.Compare(want, got, matrix.WithMaxMismatches(3))
	require.NoError(tb, err)
	require.Empty(tb, mm, msgAndArgs...)
}
