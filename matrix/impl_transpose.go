// SPDX-License-Identifier: MIT

// Package matrix - transpose.
package matrix

const opTranspose = "Transpose"

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: walk m row by row; data[i*cols + j] → res.data[j*rows + i].
//
// Errors:
//   - ErrNilMatrix (wrapped with "Transpose").
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// Notes:
//   - Reads are sequential and writes are strided by rows; the kernels that
//     transpose B once pay this cost to make every later inner loop sequential.
func Transpose[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := &Dense[T]{r: cols, c: rows, data: make([]T, rows*cols)}

	var baseSrc int
	for i := 0; i < rows; i++ {
		baseSrc = i * cols
		for j := 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}
