// SPDX-License-Identifier: MIT

package matmul

import "github.com/katalvlaran/dlops/matrix"

// MulRef is the canonical triple loop (i→j→k) that accumulates directly into
// the output cell. It is the correctness oracle for every other kernel, so it
// uses plain index arithmetic and no row slicing or hoisted operands.
//
// Errors:
//   - *matrix.DimensionError (errors.Is ErrDimensionMismatch), ErrNilMatrix.
//
// Complexity:
//   - Time O(r1·c1·c2), Space O(r1·c2).
func MulRef[T matrix.Number](a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	c, err := prepare(opMulRef, a, b)
	if err != nil {
		return nil, err
	}

	r1, c1, c2 := a.Rows(), a.Cols(), b.Cols()
	ad, bd, cd := a.Raw(), b.Raw(), c.Raw()
	for i := 0; i < r1; i++ {
		for j := 0; j < c2; j++ {
			for k := 0; k < c1; k++ {
				cd[i*c2+j] += ad[i*c1+k] * bd[k*c2+j]
			}
		}
	}

	return c, nil
}
