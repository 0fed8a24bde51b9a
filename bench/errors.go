// SPDX-License-Identifier: MIT
// Package bench: sentinel error set.

package bench

import "errors"

var (
	// ErrZeroBaseline is returned by PerformanceChange when the baseline time
	// is zero; a relative change against nothing is undefined.
	ErrZeroBaseline = errors.New("bench: baseline time must be > 0")

	// ErrNoKernels is returned by Run when the kernel selection is empty.
	ErrNoKernels = errors.New("bench: no kernels selected")
)

const (
	opRun               = "Run"
	opPerformanceChange = "PerformanceChange"
)
