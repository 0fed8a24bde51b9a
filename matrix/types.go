// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the container and the kernels.
// This file intentionally contains ONLY domain-facing types (element
// constraint, comparison records). Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

// Number is the set of element types a Dense matrix may hold.
// Every kernel accumulates in the element type itself; there is no
// widening accumulator, so integer overflow and float rounding follow Go's
// native arithmetic for T.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Mismatch is one element-wise disagreement found by Compare.
// Row and Col are zero-based coordinates in the compared matrices.
type Mismatch[T Number] struct {
	Row  int // row index of the differing cell
	Col  int // column index of the differing cell
	Want T   // value in the expected matrix
	Got  T   // value in the actual matrix
}

// isFloating reports whether T is a floating-point kind.
// Integer division truncates 1/2 to zero, float division does not.
func isFloating[T Number]() bool {
	one, two := T(1), T(2)

	return one/two != 0
}
