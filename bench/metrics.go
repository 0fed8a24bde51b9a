// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"time"
)

// FLOPs is the floating-point operation count of one r×n by n×c product:
// one multiply and one add per inner step, 2·r·n·c.
func FLOPs(rowsA, colsA, colsB int) float64 {
	return 2.0 * float64(rowsA) * float64(colsA) * float64(colsB)
}

// GFLOPS converts a product's elapsed time into throughput,
// 2·rowsA·colsA·colsB / (seconds·1e9). It returns 0 for a non-positive duration
// (a timer too coarse to see the run) instead of +Inf.
func GFLOPS(rowsA, colsA, colsB int, elapsed time.Duration) float64 {
	sec := elapsed.Seconds()
	if sec <= 0 {
		return 0
	}

	return FLOPs(rowsA, colsA, colsB) / (sec * 1e9)
}

// PerformanceChange returns the relative speed-up of variant against
// baseline in percent, (baseline − variant) / baseline · 100. Positive means
// the variant is faster.
// Errors: ErrZeroBaseline when baseline <= 0.
func PerformanceChange(baseline, variant time.Duration) (float64, error) {
	if baseline <= 0 {
		return 0, fmt.Errorf("%s(%v, %v): %w", opPerformanceChange, baseline, variant, ErrZeroBaseline)
	}

	return float64(baseline-variant) / float64(baseline) * 100.0, nil
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
