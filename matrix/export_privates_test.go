// SPDX-License-Identifier: MIT

package matrix

// White-box bridge for matrix_test: exposes a read-only view of the
// unexported Options fields.

// OptionsSnapshot mirrors the internal Options fields.
type OptionsSnapshot struct {
	Eps           float64
	MaxMismatches int
	Seed          int64
	HasRand       bool
	Min, Max      int
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:           o.eps,
		MaxMismatches: o.maxMismatches,
		Seed:          o.seed,
		HasRand:       o.rng != nil,
		Min:           o.minVal,
		Max:           o.maxVal,
	}
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}
