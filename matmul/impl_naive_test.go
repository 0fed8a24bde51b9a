// SPDX-License-Identifier: MIT

package matmul_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dlops/matmul"
	"github.com/katalvlaran/dlops/matrix"
	"github.com/stretchr/testify/require"
)

// TestOnesTimesTwos: 2x3 of ones times 3x2 of twos is a 2x2 of sixes.
func TestOnesTimesTwos(t *testing.T) {
	a := filled(t, 2, 3, 1)
	b := filled(t, 3, 2, 2)

	for name, fn := range map[string]func(a, b *matrix.Dense[int]) (*matrix.Dense[int], error){
		"ijk":       matmul.MulIJK[int],
		"ikj":       matmul.MulIKJ[int],
		"transpose": matmul.MulTranspose[int],
		"ref":       matmul.MulRef[int],
	} {
		t.Run(name, func(t *testing.T) {
			c, err := fn(a, b)
			require.NoError(t, err)
			require.Equal(t, 2, c.Rows())
			require.Equal(t, 2, c.Cols())
			require.Equal(t, []int{6, 6, 6, 6}, c.Raw())
		})
	}
}

// TestSequentialSquare: 3x3 sequential times itself matches the reference exactly.
func TestSequentialSquare(t *testing.T) {
	a := sequential[int](t, 3, 3)
	b := sequential[int](t, 3, 3)
	require.True(t, a.Equal(b))

	ref, err := matmul.MulRef(a, b)
	require.NoError(t, err)
	require.Equal(t, []int{15, 18, 21, 42, 54, 66, 69, 90, 111}, ref.Raw())

	got, err := matmul.MulIJK(a, b)
	require.NoError(t, err)
	require.True(t, ref.Equal(got))
}

// TestDimensionMismatch: 2x3 times 4x2 is rejected by every kernel.
func TestDimensionMismatch(t *testing.T) {
	a := filled(t, 2, 3, 1.0)
	b := filled(t, 4, 2, 1.0)

	for _, k := range append(matmul.Kernels[float64](), matmul.Reference[float64]()) {
		t.Run(k.Name, func(t *testing.T) {
			c, err := k.Fn(a, b, 2)
			require.Nil(t, c)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

			var de *matrix.DimensionError
			require.True(t, errors.As(err, &de))
			require.Equal(t, 3, de.ACols)
			require.Equal(t, 4, de.BRows)
		})
	}
}

func TestNilOperands(t *testing.T) {
	b := filled(t, 2, 2, 1)
	_, err := matmul.MulIJK(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matmul.MulIKJ(b, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matmul.Tiled[int](nil, nil, 4)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestInputsUntouched checks that no kernel writes into its operands.
func TestInputsUntouched(t *testing.T) {
	a, b := randPair[int](t, shape{r1: 6, c1: 5, c2: 7}, 3)
	a0, b0 := a.Clone(), b.Clone()
	for _, k := range matmul.Kernels[int]() {
		_, err := k.Fn(a, b, 3)
		require.NoError(t, err)
		require.True(t, a.Equal(a0), k.Name)
		require.True(t, b.Equal(b0), k.Name)
	}
}
