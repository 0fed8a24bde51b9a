// SPDX-License-Identifier: MIT

// Package matrix - deterministic fills for fixtures and benchmarks.
package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	ctxFillRandom     = "FillRandom"
	ctxFillSequential = "FillSequential"
)

// FillRandom overwrites every element with an integer drawn uniformly from
// the inclusive range [min, max] (WithRange; default [0, 10]) and converted
// to T. Elements are written in row-major order from one RNG stream, so a
// given seed always yields the same matrix.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrInvalidRange when min > max.
//
// Notes:
//   - Negative bounds wrap for unsigned T, as Go conversion does.
//   - Any range with min <= max is accepted, up to [math.MinInt, math.MaxInt].
//
// Complexity:
//   - Time O(r*c), Space O(1) beyond the RNG.
func (m *Dense[T]) FillRandom(opts ...Option) error {
	if m == nil {
		return fmt.Errorf("%s: %w", ctxFillRandom, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	if o.minVal > o.maxVal {
		return fmt.Errorf("%s: [%d, %d]: %w", ctxFillRandom, o.minVal, o.maxVal, ErrInvalidRange)
	}

	rng := o.random()
	// Width in uint64 wraps to 0 only for the full 64-bit range.
	span := uint64(o.maxVal) - uint64(o.minVal) + 1
	for i := range m.data {
		m.data[i] = T(int(uint64(o.minVal) + drawBelow(rng, span)))
	}

	return nil
}

// drawBelow returns a uniform value in [0, span); span == 0 means 2^64.
func drawBelow(rng *rand.Rand, span uint64) uint64 {
	switch {
	case span == 0:
		return rng.Uint64()
	case span <= math.MaxInt:
		return uint64(rng.Intn(int(span)))
	case span <= math.MaxInt64:
		return uint64(rng.Int63n(int64(span)))
	}
	// span > 2^63: each draw is accepted with probability > 1/2.
	for {
		if v := rng.Uint64(); v < span {
			return v
		}
	}
}

// FillSequential writes the row-major linear index into every element:
// (i,j) ← T(i*cols + j). Deterministic; used for reproducible fixtures.
// Errors: ErrNilMatrix for a nil receiver.
func (m *Dense[T]) FillSequential() error {
	if m == nil {
		return fmt.Errorf("%s: %w", ctxFillSequential, ErrNilMatrix)
	}
	for i := range m.data {
		m.data[i] = T(i)
	}

	return nil
}
