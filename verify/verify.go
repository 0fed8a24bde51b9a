// SPDX-License-Identifier: MIT

package verify

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/dlops/matmul"
	"github.com/katalvlaran/dlops/matrix"
)

// NameTransposeInvolution labels the Transpose(Transpose(A)) == A case.
const NameTransposeInvolution = "transpose-involution"

const opCheck = "Check"

// Case is one comparison against the oracle.
type Case[T matrix.Number] struct {
	Kernel     string               // registry name, or NameTransposeInvolution
	Label      string               // human-readable kernel label
	Tile       int                  // tile size; 0 for kernels that do not tile
	Mismatches []matrix.Mismatch[T] // every disagreeing cell, row-major
}

// Passed reports whether the case found no mismatch.
func (c Case[T]) Passed() bool { return len(c.Mismatches) == 0 }

// Report is the outcome of Check.
type Report[T matrix.Number] struct {
	RowsA, ColsA, ColsB int
	Epsilon             float64 // effective float tolerance; unused for integers
	Cases               []Case[T]
}

// Check multiplies a×b with every candidate kernel (tiled kernels once per
// tile size) and compares each result against matmul.MulRef. It also checks
// that transposing a twice gives a back.
//
// A numerical mismatch is recorded in the report and never stops the run, so
// one call surfaces every failing kernel and coordinate.
//
// Errors (wrapped with "Check"):
//   - *matrix.DimensionError / ErrNilMatrix for incompatible operands.
//   - any kernel error (which would indicate a bug, not a mismatch).
//
// Float tolerance:
//   - The effective eps is max(WithEpsilon, SummationSlack·c1·u), where c1 is
//     the inner dimension and u the unit roundoff of T, so reordered sums of
//     long dot products are not reported as failures.
func Check[T matrix.Number](a, b *matrix.Dense[T], opts ...Option) (*Report[T], error) {
	o := gatherOptions(opts...)
	want, err := matmul.MulRef(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCheck, err)
	}
	tiles := o.tiles
	if tiles == nil {
		tiles = DefaultTiles(a.Rows(), a.Cols(), b.Cols())
	}

	cmpOps := compareOptions[T](o, a.Cols())
	rep := &Report[T]{RowsA: a.Rows(), ColsA: a.Cols(), ColsB: b.Cols(), Epsilon: matrix.NewOptions(cmpOps...).Epsilon()}
	for _, k := range matmul.Kernels[T]() {
		grid := []int{0}
		if k.Tiled {
			grid = tiles
		}
		for _, tile := range grid {
			got, err := k.Fn(a, b, tile)
			if err != nil {
				return nil, fmt.Errorf("%s: %s: %w", opCheck, k.Name, err)
			}
			mm, err := matrix.Compare(want, got, cmpOps...)
			if err != nil {
				return nil, fmt.Errorf("%s: %s: %w", opCheck, k.Name, err)
			}
			rep.Cases = append(rep.Cases, Case[T]{Kernel: k.Name, Label: k.Label, Tile: tile, Mismatches: mm})
		}
	}

	involution, err := transposeInvolution(a, cmpOps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCheck, err)
	}
	rep.Cases = append(rep.Cases, involution)

	return rep, nil
}

// transposeInvolution compares Transpose(Transpose(a)) with a.
func transposeInvolution[T matrix.Number](a *matrix.Dense[T], ops []matrix.Option) (Case[T], error) {
	at, err := matrix.Transpose(a)
	if err != nil {
		return Case[T]{}, err
	}
	att, err := matrix.Transpose(at)
	if err != nil {
		return Case[T]{}, err
	}
	mm, err := matrix.Compare(a, att, ops...)
	if err != nil {
		return Case[T]{}, err
	}

	return Case[T]{Kernel: NameTransposeInvolution, Label: "transpose twice", Mismatches: mm}, nil
}

// Passed reports whether every case passed.
func (r *Report[T]) Passed() bool {
	return lo.EveryBy(r.Cases, func(c Case[T]) bool { return c.Passed() })
}

// Failed returns the failing cases in run order.
func (r *Report[T]) Failed() []Case[T] {
	return lo.Filter(r.Cases, func(c Case[T], _ int) bool { return !c.Passed() })
}

// ErrFailed is returned by Err when at least one case failed.
var ErrFailed = errors.New("verify: kernel results differ from reference")

// Err returns nil when every case passed and ErrFailed (wrapped with the
// failing count) otherwise, so callers can turn a report into an exit status.
func (r *Report[T]) Err() error {
	failed := len(r.Failed())
	if failed == 0 {
		return nil
	}

	return fmt.Errorf("%d of %d cases: %w", failed, len(r.Cases), ErrFailed)
}

// WriteText writes one PASS/FAIL line per case, every mismatch coordinate
// under a failing case, and a summary line.
func (r *Report[T]) WriteText(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Checking %dx%d x %dx%d against reference\n", r.RowsA, r.ColsA, r.ColsA, r.ColsB)
	for _, c := range r.Cases {
		name := c.Label
		if c.Tile > 0 {
			name = fmt.Sprintf("%s (tile=%d)", c.Label, c.Tile)
		}
		if c.Passed() {
			fmt.Fprintf(&sb, "Checking %s: PASS\n", name)
			continue
		}
		fmt.Fprintf(&sb, "Checking %s: FAIL (%d mismatches)\n", name, len(c.Mismatches))
		for _, m := range c.Mismatches {
			fmt.Fprintf(&sb, "  Mismatch at (%d,%d): %v vs %v\n", m.Row, m.Col, m.Want, m.Got)
		}
	}
	if r.Passed() {
		sb.WriteString("All matmul tests passed!\n")
	} else {
		fmt.Fprintf(&sb, "Some tests failed! (%d of %d cases)\n", len(r.Failed()), len(r.Cases))
	}
	_, err := io.WriteString(w, sb.String())

	return err
}
