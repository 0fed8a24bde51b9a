// SPDX-License-Identifier: MIT

// Package bench: functional configuration for Run.
package bench

// Defaults (single source of truth).
const (
	// DefaultRepeat runs every kernel once, as a plain timing pass does.
	DefaultRepeat = 1
)

const (
	panicRepeatInvalid = "bench: WithRepeat: n must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective Run configuration.
type Options struct {
	repeat  int      // >= 1; best-of-N timing per kernel
	kernels []string // kernel names to run, in order; nil = all candidates
}

// WithRepeat times every kernel n times and keeps the fastest run, which
// filters out scheduler and first-touch page-fault noise.
// Panics when n < 1 (programmer error).
func WithRepeat(n int) Option {
	if n < 1 {
		panic(panicRepeatInvalid)
	}

	return func(o *Options) { o.repeat = n }
}

// WithKernels restricts Run to the named kernels, timed in the given order.
// The first name is the baseline for the performance change column.
// Unknown names are reported by Run as matmul.ErrUnknownKernel.
func WithKernels(names ...string) Option {
	cp := append([]string(nil), names...)

	return func(o *Options) { o.kernels = cp }
}

// gatherOptions applies user options over defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{repeat: DefaultRepeat}
	for _, set := range user {
		set(&o)
	}

	return o
}
