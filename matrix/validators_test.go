// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dlops/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.Dense[float64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, mustDense[float64](t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", mustDense[float64](t, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", mustDense[float64](t, 2, 3), mustDense[float64](t, 2, 3), nil},
		{"row mismatch", mustDense[float64](t, 2, 3), mustDense[float64](t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", mustDense[float64](t, 2, 3), mustDense[float64](t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustDense[int](t, 1, 1)))
}

// TestValidateMulCompatible checks the inner-dimension rule and the typed error.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible("op", mustDense[int](t, 2, 3), mustDense[int](t, 3, 4)))

	err := matrix.ValidateMulCompatible("MulIJK", mustDense[int](t, 2, 3), mustDense[int](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var de *matrix.DimensionError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "MulIJK", de.Op)
	require.Equal(t, 3, de.ACols)
	require.Equal(t, 2, de.BRows)
	require.EqualError(t, err, "matrix: dimension mismatch: (2x3) x (2x3): inner dimensions 3 != 2")

	err = matrix.ValidateMulCompatible("op", nil, mustDense[int](t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.False(t, errors.As(err, &de))
}
