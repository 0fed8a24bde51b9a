// SPDX-License-Identifier: MIT

package matmul

import "github.com/katalvlaran/dlops/matrix"

// MulTranspose multiplies a (r1×c1) by b (c1×c2) after transposing b once.
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows; allocate C (r1×c2).
//   - Stage 2: bt = Transpose(b) (c2×c1), so column j of b is row j of bt.
//   - Stage 3: C[i][j] = Σ_k a[i][k]·bt[j][k] with a scalar accumulator.
//
// Behavior highlights:
//   - Both inner-loop operands are read with unit stride.
//   - The transposed copy is owned by the call and dropped on return.
//
// Errors:
//   - *matrix.DimensionError (errors.Is ErrDimensionMismatch), ErrNilMatrix.
//
// Complexity:
//   - Time O(c1·c2) for the transpose + O(r1·c1·c2) for the product.
//   - Space O(r1·c2) result + O(c1·c2) temporary.
func MulTranspose[T matrix.Number](a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	c, err := prepare(opMulTranspose, a, b)
	if err != nil {
		return nil, err
	}
	bt, err := matrix.Transpose(b)
	if err != nil {
		return nil, kernelErrorf(opMulTranspose, err)
	}

	r1, c1, c2 := a.Rows(), a.Cols(), b.Cols()
	ad, btd, cd := a.Raw(), bt.Raw(), c.Raw()
	var sum T
	for i := 0; i < r1; i++ {
		rowA := ad[i*c1 : (i+1)*c1]
		for j := 0; j < c2; j++ {
			rowBT := btd[j*c1 : (j+1)*c1]
			sum = 0
			for k, av := range rowA {
				sum += av * rowBT[k]
			}
			cd[i*c2+j] = sum
		}
	}

	return c, nil
}
