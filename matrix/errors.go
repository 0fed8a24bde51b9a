// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines the package-level sentinels used across the matrix
// package and by the kernels in matmul. All constructors and accessors MUST
// return these sentinels (possibly wrapped) and tests MUST check them via
// errors.Is. No exported function panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Facades wrap with fmt.Errorf("Op: %w", ErrX);
// callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Compare on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidRange indicates a random-fill range with min > max.
	ErrInvalidRange = errors.New("matrix: invalid fill range")
)

// DimensionError reports two operands whose shapes cannot be multiplied
// (A.Cols != B.Rows). It matches ErrDimensionMismatch under errors.Is, and
// errors.As exposes both shapes for diagnostics. The message omits Op; the
// facade that returns it prefixes its own tag.
type DimensionError struct {
	Op           string // operation that rejected the operands
	ARows, ACols int
	BRows, BCols int
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: (%dx%d) x (%dx%d): inner dimensions %d != %d",
		ErrDimensionMismatch, e.ARows, e.ACols, e.BRows, e.BCols, e.ACols, e.BRows)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool { return target == ErrDimensionMismatch }
