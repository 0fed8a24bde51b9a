// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for fills and comparisons.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options in order.
//
// Design goals:
//   - Deterministic behavior: no global RNG, random fills are seeded.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//     Data-dependent problems (min > max from a CLI) surface as errors at use.
package matrix

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the tolerance used by Compare/AllClose for
	// floating-point element types: absolute below magnitude 1, relative
	// above it. Integer types always compare exactly.
	DefaultEpsilon = 1e-6

	// DefaultMaxMismatches caps the mismatch list returned by Compare.
	// Zero means "report every mismatch".
	DefaultMaxMismatches = 0
)

// Random fill policy.
const (
	// DefaultSeed seeds the RNG of FillRandom when neither WithSeed nor
	// WithRand is given, so fixtures are reproducible run to run.
	DefaultSeed int64 = 1

	// DefaultRandMin and DefaultRandMax bound the inclusive integer range
	// drawn by FillRandom.
	DefaultRandMin = 0
	DefaultRandMax = 10
)

// Print policy.
const (
	// DefaultPrintRows and DefaultPrintCols bound the window rendered by String.
	DefaultPrintRows = 5
	DefaultPrintCols = 5

	// printWidth is the right-aligned field width of one printed element.
	printWidth = 6
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid       = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxMismatchesInvalid = "matrix: WithMaxMismatches: n must be >= 0"
	panicRandNil              = "matrix: WithRand: rng must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them internally via gatherOptions.
type Options struct {
	// numeric policy
	eps           float64 // >= 0; DefaultEpsilon
	maxMismatches int     // >= 0; DefaultMaxMismatches (0 = unlimited)

	// random fill policy
	seed   int64      // DefaultSeed
	rng    *rand.Rand // nil => rand.New(rand.NewSource(seed))
	minVal int        // DefaultRandMin
	maxVal int        // DefaultRandMax
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the tolerance used for floating-point comparison; two
// values agree when |a-b| <= eps·max(1, |a|, |b|).
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - Tiled kernels reorder summation, so float results differ from the
//     reference only by rounding; widen eps for long inner dimensions.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxMismatches caps how many mismatches Compare collects (0 = all).
func WithMaxMismatches(n int) Option {
	if n < 0 {
		panic(panicMaxMismatchesInvalid)
	}

	return func(o *Options) { o.maxMismatches = n }
}

// WithSeed makes FillRandom draw from rand.New(rand.NewSource(seed)).
// It clears any RNG installed earlier by WithRand (last writer wins).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.rng = nil
	}
}

// WithRand shares a caller-owned RNG stream across fills.
// The stream is advanced by every fill that uses it; *rand.Rand is not safe
// for concurrent use, so do not share it across goroutines.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = rng }
}

// WithRange sets the inclusive integer range [minVal, maxVal] of FillRandom.
// The range is validated at fill time (ErrInvalidRange) because it usually
// comes from user input.
func WithRange(minVal, maxVal int) Option {
	return func(o *Options) {
		o.minVal = minVal
		o.maxVal = maxVal
	}
}

// NewOptions resolves opts over the documented defaults.
// Exposed so callers (bench, verify) can forward one option list to several
// matrix calls and still inspect the effective policy in tests.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Range returns the effective inclusive random-fill range.
func (o Options) Range() (minVal, maxVal int) { return o.minVal, o.maxVal }

// gatherOptions applies user options over defaults, last writer wins.
// Complexity: O(len(opts)).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:           DefaultEpsilon,
		maxMismatches: DefaultMaxMismatches,
		seed:          DefaultSeed,
		minVal:        DefaultRandMin,
		maxVal:        DefaultRandMax,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// random returns the RNG for a fill: the shared stream if installed,
// otherwise a fresh stream seeded with o.seed.
func (o Options) random() *rand.Rand {
	if o.rng != nil {
		return o.rng
	}

	return rand.New(rand.NewSource(o.seed))
}
