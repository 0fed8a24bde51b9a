// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/katalvlaran/dlops/matmul"
	"github.com/katalvlaran/dlops/matrix"
)

// Run times every selected kernel on a×b and returns the report.
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows, resolve the kernel selection, and
//     reject tileSize <= 0 when any selected kernel tiles. Nothing is timed
//     until all inputs are known to be valid.
//   - Stage 2: for each kernel, in order, run it Repeat times on the same
//     operands and keep the fastest wall-clock time.
//   - Stage 3: derive GFLOPS per kernel and the performance change of every
//     kernel against the first one (the baseline).
//
// Behavior highlights:
//   - ctx is checked between kernel runs only; a kernel in flight is not
//     interrupted.
//   - Kernels run one at a time on the calling goroutine.
//
// Errors:
//   - *matrix.DimensionError / ErrNilMatrix, matmul.ErrInvalidTileSize,
//     matmul.ErrUnknownKernel, ErrNoKernels, ctx.Err(), and any kernel error,
//     all wrapped with "Run".
func Run[T matrix.Number](ctx context.Context, a, b *matrix.Dense[T], tileSize int, opts ...Option) (*Report, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateMulCompatible(opRun, a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opRun, err)
	}
	kernels, err := selectKernels[T](o.kernels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRun, err)
	}
	if tileSize <= 0 && lo.SomeBy(kernels, func(k matmul.Kernel[T]) bool { return k.Tiled }) {
		return nil, fmt.Errorf("%s: tile=%d: %w", opRun, tileSize, matmul.ErrInvalidTileSize)
	}

	var zero T
	rep := &Report{
		Started:     time.Now(),
		Platform:    DetectPlatform(),
		ElementType: fmt.Sprintf("%T", zero),
		RowsA:       a.Rows(),
		ColsA:       a.Cols(),
		RowsB:       b.Rows(),
		ColsB:       b.Cols(),
		TileSize:    tileSize,
		Repeat:      o.repeat,
	}
	for _, k := range kernels {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: before %s: %w", opRun, k.Name, err)
		}
		best, err := timeKernel(k, a, b, tileSize, o.repeat)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", opRun, k.Name, err)
		}
		rep.Results = append(rep.Results, Result{
			Name:      k.Name,
			Label:     k.Label,
			Tiled:     k.Tiled,
			Elapsed:   best,
			ElapsedMs: Millis(best),
			GFLOPS:    GFLOPS(a.Rows(), a.Cols(), b.Cols(), best),
		})
	}
	rep.computeChanges()

	return rep, nil
}

// timeKernel returns the fastest of repeat runs of k.
func timeKernel[T matrix.Number](k matmul.Kernel[T], a, b *matrix.Dense[T], tileSize, repeat int) (time.Duration, error) {
	runs := make([]time.Duration, 0, repeat)
	for n := 0; n < repeat; n++ {
		t := NewTimer()
		if _, err := k.Fn(a, b, tileSize); err != nil {
			return 0, err
		}
		runs = append(runs, t.Elapsed())
	}

	return lo.Min(runs), nil
}

// selectKernels resolves names against the registry; nil means all candidates.
func selectKernels[T matrix.Number](names []string) ([]matmul.Kernel[T], error) {
	if names == nil {
		return matmul.Kernels[T](), nil
	}
	if len(names) == 0 {
		return nil, ErrNoKernels
	}
	out := make([]matmul.Kernel[T], 0, len(names))
	for _, name := range names {
		k, err := matmul.Lookup[T](name)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}

	return out, nil
}
