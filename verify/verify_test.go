// SPDX-License-Identifier: MIT

package verify_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/dlops/matmul"
	"github.com/katalvlaran/dlops/matrix"
	"github.com/katalvlaran/dlops/verify"
	"github.com/stretchr/testify/require"
)

func operands[T matrix.Number](t *testing.T, r1, c1, c2 int) (*matrix.Dense[T], *matrix.Dense[T]) {
	t.Helper()
	a, err := matrix.NewDense[T](r1, c1)
	require.NoError(t, err)
	b, err := matrix.NewDense[T](c1, c2)
	require.NoError(t, err)
	require.NoError(t, a.FillRandom(matrix.WithSeed(10), matrix.WithRange(-3, 9)))
	require.NoError(t, b.FillRandom(matrix.WithSeed(11), matrix.WithRange(-3, 9)))

	return a, b
}

func TestDefaultTiles(t *testing.T) {
	require.Equal(t, []int{1, 3, 7, 16, 20}, verify.DefaultTiles(20, 4, 5))
	require.Equal(t, []int{1, 3, 7, 16}, verify.DefaultTiles(2, 16, 3))
	require.Equal(t, []int{1, 3, 7, 16, 2}, verify.DefaultTiles(2, 1, 1))
	require.Equal(t, []int{1, 3, 7, 16}, verify.DefaultFixedTiles, "DefaultTiles must not modify the fixed set")
}

func TestCheckPasses(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		a, b := operands[int](t, 9, 5, 12)
		rep, err := verify.Check(a, b)
		require.NoError(t, err)
		// 3 untiled + 2 tiled × {1,3,7,16,12} + involution
		require.Len(t, rep.Cases, 3+2*5+1)
		require.True(t, rep.Passed())
		require.Empty(t, rep.Failed())
		require.NoError(t, rep.Err())
	})
	t.Run("float64", func(t *testing.T) {
		a, b := operands[float64](t, 17, 17, 17)
		rep, err := verify.Check(a, b, verify.WithEpsilon(1e-9), verify.WithTiles(2, 4, 4))
		require.NoError(t, err)
		require.Len(t, rep.Cases, 3+2*2+1)
		require.NoError(t, rep.Err())
	})
}

func sequentialPair[T matrix.Number](t *testing.T, r1, c1, c2 int) (*matrix.Dense[T], *matrix.Dense[T]) {
	t.Helper()
	a, err := matrix.NewDense[T](r1, c1)
	require.NoError(t, err)
	b, err := matrix.NewDense[T](c1, c2)
	require.NoError(t, err)
	require.NoError(t, a.FillSequential())
	require.NoError(t, b.FillSequential())

	return a, b
}

// TestCheckFloat32Sequential: 64x64 sequential float32 sums exceed float32's
// exact-integer range; reordered tiles must still pass.
func TestCheckFloat32Sequential(t *testing.T) {
	a, b := sequentialPair[float32](t, 64, 64, 64)
	rep, err := verify.Check(a, b)
	require.NoError(t, err)
	for _, c := range rep.Failed() {
		t.Errorf("%s tile=%d: %d mismatches, first %+v", c.Kernel, c.Tile, len(c.Mismatches), c.Mismatches[0])
	}
	require.NoError(t, rep.Err())
	require.InDelta(t, verify.SummationSlack*64*0x1p-24, rep.Epsilon, 1e-12)
}

func TestCheckEpsilon(t *testing.T) {
	ai, bi := sequentialPair[int](t, 3, 4, 2)
	rep, err := verify.Check(ai, bi)
	require.NoError(t, err)
	require.Equal(t, matrix.DefaultEpsilon, rep.Epsilon)

	af, bf := sequentialPair[float32](t, 3, 4, 2)
	rep32, err := verify.Check(af, bf, verify.WithEpsilon(0.25))
	require.NoError(t, err)
	require.Equal(t, 0.25, rep32.Epsilon, "a wider user eps wins over the floor")
}

func TestCheckCaseLayout(t *testing.T) {
	a, b := operands[int](t, 4, 3, 2)
	rep, err := verify.Check(a, b, verify.WithTiles(2))
	require.NoError(t, err)

	var names []string
	for _, c := range rep.Cases {
		names = append(names, c.Kernel)
	}
	require.Equal(t, []string{
		matmul.NameIJK, matmul.NameIKJ, matmul.NameTranspose,
		matmul.NameTiled, matmul.NameTiledWithTranspose, verify.NameTransposeInvolution,
	}, names)
	require.Zero(t, rep.Cases[0].Tile)
	require.Equal(t, 2, rep.Cases[3].Tile)
}

func TestCheckErrors(t *testing.T) {
	a, _ := operands[int](t, 2, 3, 2)
	_, err := verify.Check(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = verify.Check[int](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	require.Panics(t, func() { verify.WithTiles(4, 0) })
}

// failingReport builds a report with one failing case by hand; the real
// kernels never disagree with the reference.
func failingReport() *verify.Report[int] {
	return &verify.Report[int]{
		RowsA: 2, ColsA: 2, ColsB: 2,
		Cases: []verify.Case[int]{
			{Kernel: matmul.NameIJK, Label: "i-j-k"},
			{Kernel: matmul.NameTiled, Label: "tiled", Tile: 3, Mismatches: []matrix.Mismatch[int]{
				{Row: 0, Col: 1, Want: 4, Got: 5},
			}},
		},
	}
}

func TestReportFailure(t *testing.T) {
	rep := failingReport()
	require.False(t, rep.Passed())
	require.Len(t, rep.Failed(), 1)
	require.ErrorIs(t, rep.Err(), verify.ErrFailed)
	require.EqualError(t, rep.Err(), "1 of 2 cases: verify: kernel results differ from reference")

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))
	require.Equal(t, ""+
		"Checking 2x2 x 2x2 against reference\n"+
		"Checking i-j-k: PASS\n"+
		"Checking tiled (tile=3): FAIL (1 mismatches)\n"+
		"  Mismatch at (0,1): 4 vs 5\n"+
		"Some tests failed! (1 of 2 cases)\n", buf.String())
}

func TestReportPassText(t *testing.T) {
	a, b := operands[int](t, 3, 3, 3)
	rep, err := verify.Check(a, b, verify.WithTiles(1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))
	out := buf.String()
	require.Contains(t, out, "Checking tiled with transpose (tile=1): PASS\n")
	require.Contains(t, out, "Checking transpose twice: PASS\n")
	require.True(t, strings.HasSuffix(out, "All matmul tests passed!\n"))
}
