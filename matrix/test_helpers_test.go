// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities.
//   • Keep all data integral and small so exact comparisons are meaningful.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dlops/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense allocates an r×c zero matrix or fails the test.
func mustDense[T matrix.Number](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(tb, err)

	return m
}

// mustFrom builds an r×c matrix from row-major values or fails the test.
func mustFrom[T matrix.Number](tb testing.TB, r, c int, vals ...T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(tb, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt[T matrix.Number](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}
