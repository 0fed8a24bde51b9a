// SPDX-License-Identifier: MIT

// Package verify: functional configuration for Check.
package verify

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/dlops/matrix"
)

// DefaultFixedTiles are the tile sizes always exercised for tiled kernels:
// a single scalar per block, two sizes that divide almost nothing, and a
// typical cache-sized block. Check adds max(r1, c1, c2) so one case always
// degenerates to a single block.
var DefaultFixedTiles = []int{1, 3, 7, 16}

const (
	panicTileInvalid = "verify: WithTiles: tile sizes must be > 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective Check configuration.
type Options struct {
	tiles     []int           // nil => DefaultTiles(r1, c1, c2)
	matrixOps []matrix.Option // forwarded to matrix.Compare
}

// WithTiles replaces the default tile grid. Duplicates are dropped.
// Panics on a non-positive size (programmer error).
func WithTiles(sizes ...int) Option {
	for _, s := range sizes {
		if s <= 0 {
			panic(panicTileInvalid)
		}
	}
	cp := lo.Uniq(sizes)

	return func(o *Options) { o.tiles = cp }
}

// WithEpsilon sets the float comparison tolerance (see matrix.WithEpsilon).
func WithEpsilon(eps float64) Option {
	set := matrix.WithEpsilon(eps)

	return func(o *Options) { o.matrixOps = append(o.matrixOps, set) }
}

// WithMaxMismatches caps the mismatches recorded per case (0 = all).
func WithMaxMismatches(n int) Option {
	set := matrix.WithMaxMismatches(n)

	return func(o *Options) { o.matrixOps = append(o.matrixOps, set) }
}

// SummationSlack scales the rounding floor of the float tolerance. Two
// orderings of an n-term dot product of non-negative terms differ by at most
// about 2·n·u relative to the result; the slack doubles that.
const SummationSlack = 4

// compareOptions returns the matrix options for Compare: the user options
// followed by an epsilon raised to the rounding floor for inner dimension c1.
func compareOptions[T matrix.Number](o Options, c1 int) []matrix.Option {
	floor := SummationSlack * float64(c1) * matrix.UnitRoundoff[T]()
	eps := max(matrix.NewOptions(o.matrixOps...).Epsilon(), floor)

	return append(append(make([]matrix.Option, 0, len(o.matrixOps)+1), o.matrixOps...), matrix.WithEpsilon(eps))
}

// DefaultTiles returns DefaultFixedTiles plus max(r1, c1, c2), deduplicated.
func DefaultTiles(r1, c1, c2 int) []int {
	return lo.Uniq(append(append([]int(nil), DefaultFixedTiles...), max(r1, c1, c2)))
}

// gatherOptions applies user options over defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	var o Options
	for _, set := range user {
		set(&o)
	}

	return o
}
