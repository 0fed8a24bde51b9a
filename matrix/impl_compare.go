// SPDX-License-Identifier: MIT

// Package matrix - element-wise comparison with a numeric policy.
//
// Purpose:
//   - Compare a candidate result against an expected one without aborting on
//     the first difference, so every disagreeing coordinate can be reported.
//   - Integers compare exactly; floats compare within eps scaled by magnitude.
package matrix

import "math"

const (
	opCompare  = "Compare"
	opAllClose = "AllClose"
)

// Compare returns every cell where got differs from want.
// Implementation:
//   - Stage 1: ValidateSameShape(want, got).
//   - Stage 2: walk both buffers in row-major order; a cell differs when
//     want != got for integer T, or |want-got| > eps·max(1, |want|, |got|)
//     for floating T (absolute near zero, relative for large values).
//   - Stage 3: stop early once WithMaxMismatches(n>0) is reached.
//
// Returns:
//   - []Mismatch[T]: in row-major order; nil when the matrices agree.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Compare").
//
// Notes:
//   - NaN never compares close to anything, including NaN.
//
// Complexity:
//   - Time O(r*c), Space O(#mismatches).
func Compare[T Number](want, got *Dense[T], opts ...Option) ([]Mismatch[T], error) {
	if err := ValidateSameShape(want, got); err != nil {
		return nil, validatorErrorf(opCompare, err)
	}
	o := gatherOptions(opts...)
	floating := isFloating[T]()

	var out []Mismatch[T]
	for idx, w := range want.data {
		g := got.data[idx]
		if withinEps(w, g, floating, o.eps) {
			continue
		}
		out = append(out, Mismatch[T]{Row: idx / want.c, Col: idx % want.c, Want: w, Got: g})
		if o.maxMismatches > 0 && len(out) == o.maxMismatches {
			break
		}
	}

	return out, nil
}

// AllClose reports whether a and b agree element-wise under the same policy
// as Compare. Errors: ErrNilMatrix, ErrDimensionMismatch.
func AllClose[T Number](a, b *Dense[T], opts ...Option) (bool, error) {
	first := append(append(make([]Option, 0, len(opts)+1), opts...), WithMaxMismatches(1))
	mm, err := Compare(a, b, first...)
	if err != nil {
		return false, validatorErrorf(opAllClose, err)
	}

	return len(mm) == 0, nil
}

// withinEps applies the numeric policy to one pair of elements.
func withinEps[T Number](a, b T, floating bool, eps float64) bool {
	if a == b {
		return true
	}
	if !floating {
		return false
	}
	fa, fb := float64(a), float64(b)
	scale := max(1, math.Abs(fa), math.Abs(fb))

	return math.Abs(fa-fb) <= eps*scale
}

// UnitRoundoff returns the unit roundoff u of T (2^-24 for float32, 2^-53
// for float64): the largest relative error of one rounded operation.
// It is 0 for integer types, whose arithmetic does not round.
func UnitRoundoff[T Number]() float64 {
	if !isFloating[T]() {
		return 0
	}
	one := T(1)
	u := T(1)
	for {
		half := u / 2
		if T(one+half) == one {
			return float64(u) / 2
		}
		u = half
	}
}
