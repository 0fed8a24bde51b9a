// SPDX-License-Identifier: MIT

// Package matmul - naive loop-order kernels (i-j-k and i-k-j).
//
// Both kernels compute C = A × B with C[i][j] = Σ_k A[i][k]·B[k][j] and
// differ only in the nesting order of the three loops, which decides how B
// is walked through memory.
package matmul

import "github.com/katalvlaran/dlops/matrix"

// prepare validates a×b and allocates the zeroed r1×c2 result.
func prepare[T matrix.Number](op string, a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(op, a, b); err != nil {
		return nil, kernelErrorf(op, err)
	}
	c, err := matrix.NewDense[T](a.Rows(), b.Cols())
	if err != nil {
		return nil, kernelErrorf(op, err)
	}

	return c, nil
}

// MulIJK multiplies a (r1×c1) by b (c1×c2) with the i→j→k loop order.
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows; allocate C (r1×c2).
//   - Stage 2: for each output cell, accumulate Σ_k a[i][k]·b[k][j] into a
//     scalar and store it once.
//
// Behavior highlights:
//   - Exactly one write per output cell.
//   - The inner loop reads b column-wise (stride c2), the worst access
//     pattern for row-major storage; this is the benchmark baseline.
//
// Errors:
//   - *matrix.DimensionError (errors.Is ErrDimensionMismatch), ErrNilMatrix.
//
// Complexity:
//   - Time O(r1·c1·c2), Space O(r1·c2).
func MulIJK[T matrix.Number](a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	c, err := prepare(opMulIJK, a, b)
	if err != nil {
		return nil, err
	}

	r1, c1, c2 := a.Rows(), a.Cols(), b.Cols()
	ad, bd, cd := a.Raw(), b.Raw(), c.Raw()
	var sum T
	for i := 0; i < r1; i++ {
		rowA := ad[i*c1 : (i+1)*c1]
		for j := 0; j < c2; j++ {
			sum = 0
			for k := 0; k < c1; k++ {
				sum += rowA[k] * bd[k*c2+j]
			}
			cd[i*c2+j] = sum
		}
	}

	return c, nil
}

// MulIKJ multiplies a (r1×c1) by b (c1×c2) with the i→k→j loop order.
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows; allocate zeroed C (r1×c2).
//   - Stage 2: for each (i,k), broadcast a[i][k] across row k of b and add
//     into row i of C.
//
// Behavior highlights:
//   - a, b and C are all walked row-wise (unit stride) in the inner loop.
//   - Pays a read-modify-write of C[i][j] on every inner iteration.
//
// Errors:
//   - *matrix.DimensionError (errors.Is ErrDimensionMismatch), ErrNilMatrix.
//
// Complexity:
//   - Time O(r1·c1·c2), Space O(r1·c2).
func MulIKJ[T matrix.Number](a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	c, err := prepare(opMulIKJ, a, b)
	if err != nil {
		return nil, err
	}

	r1, c1, c2 := a.Rows(), a.Cols(), b.Cols()
	ad, bd, cd := a.Raw(), b.Raw(), c.Raw()
	var av T
	for i := 0; i < r1; i++ {
		rowC := cd[i*c2 : (i+1)*c2]
		for k := 0; k < c1; k++ {
			av = ad[i*c1+k]
			rowB := bd[k*c2 : (k+1)*c2]
			for j := range rowC {
				rowC[j] += av * rowB[j]
			}
		}
	}

	return c, nil
}
