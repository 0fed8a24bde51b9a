// SPDX-License-Identifier: MIT

// Package matmul - cache-blocked (tiled) kernels.
//
// Purpose:
//   - Partition the three iteration dimensions (output rows, output columns,
//     shared dimension) into cubic blocks of side tileSize, so each block's
//     slices of A, B and C stay resident in cache while they are reused.
//   - Expose the per-block kernels for callers that own the accumulator.
//
// Block order is fixed: output rows outermost, then output columns, then the
// shared dimension innermost. For floating-point T that order decides how
// partial sums are rounded (not whether the result is correct); integer
// results are identical to the reference for every tile size.
package matmul

import (
	"fmt"

	"github.com/katalvlaran/dlops/matrix"
)

// Tile identifies one block of the iteration space.
// Row/Col/Inner are the starting offsets (tw, th, tk) along output rows,
// output columns and the shared dimension; Size is the block side. The block
// is clipped to the matrix bounds, so edge blocks may be smaller.
type Tile struct {
	Row   int // first output row (tw)
	Col   int // first output column (th)
	Inner int // first shared-dimension index (tk)
	Size  int // block side, > 0
}

// validateTileSize rejects non-positive tile sizes.
func validateTileSize(tileSize int) error {
	if tileSize <= 0 {
		return fmt.Errorf("tile=%d: %w", tileSize, ErrInvalidTileSize)
	}

	return nil
}

// Tiled multiplies a (r1×c1) by b (c1×c2) block by block with the i→k→j
// blocked kernel.
// Implementation:
//   - Stage 1: reject tileSize <= 0, then validate a.Cols == b.Rows; allocate zeroed C.
//   - Stage 2: for tw over rows, th over columns, tk over the shared dim
//     (step tileSize each), add the block product into C via blockIKJ.
//
// Behavior highlights:
//   - tileSize >= max(r1, c1, c2) degenerates to one block, i.e. MulIKJ.
//   - tileSize == 1 performs one scalar update per block.
//
// Errors:
//   - ErrInvalidTileSize, *matrix.DimensionError, ErrNilMatrix.
//
// Complexity:
//   - Time O(r1·c1·c2), Space O(r1·c2).
func Tiled[T matrix.Number](a, b *matrix.Dense[T], tileSize int) (*matrix.Dense[T], error) {
	if err := validateTileSize(tileSize); err != nil {
		return nil, kernelErrorf(opTiled, err)
	}
	c, err := prepare(opTiled, a, b)
	if err != nil {
		return nil, err
	}

	r1, c1, c2 := a.Rows(), a.Cols(), b.Cols()
	tileSize = clampTile(tileSize, r1, c1, c2)
	ad, bd, cd := a.Raw(), b.Raw(), c.Raw()
	for tw := 0; tw < r1; tw += tileSize {
		for th := 0; th < c2; th += tileSize {
			for tk := 0; tk < c1; tk += tileSize {
				blockIKJ(cd, ad, bd, r1, c1, c2, Tile{Row: tw, Col: th, Inner: tk, Size: tileSize})
			}
		}
	}

	return c, nil
}

// TiledWithTranspose transposes b once and multiplies block by block with
// the i→j→k blocked kernel against the transposed operand.
// Implementation:
//   - Stage 1: reject tileSize <= 0, validate shapes, allocate zeroed C.
//   - Stage 2: bt = Transpose(b).
//   - Stage 3: same block order as Tiled; each block adds a scalar partial
//     sum Σ_{k in block} a[i][k]·bt[j][k] into C[i][j].
//
// Errors:
//   - ErrInvalidTileSize, *matrix.DimensionError, ErrNilMatrix.
//
// Complexity:
//   - Time O(c1·c2 + r1·c1·c2), Space O(r1·c2) result + O(c1·c2) temporary.
func TiledWithTranspose[T matrix.Number](a, b *matrix.Dense[T], tileSize int) (*matrix.Dense[T], error) {
	if err := validateTileSize(tileSize); err != nil {
		return nil, kernelErrorf(opTiledWithTranspose, err)
	}
	c, err := prepare(opTiledWithTranspose, a, b)
	if err != nil {
		return nil, err
	}
	bt, err := matrix.Transpose(b)
	if err != nil {
		return nil, kernelErrorf(opTiledWithTranspose, err)
	}

	r1, c1, c2 := a.Rows(), a.Cols(), b.Cols()
	tileSize = clampTile(tileSize, r1, c1, c2)
	ad, btd, cd := a.Raw(), bt.Raw(), c.Raw()
	for tw := 0; tw < r1; tw += tileSize {
		for th := 0; th < c2; th += tileSize {
			for tk := 0; tk < c1; tk += tileSize {
				blockIJKTransposed(cd, ad, btd, r1, c1, c2, Tile{Row: tw, Col: th, Inner: tk, Size: tileSize})
			}
		}
	}

	return c, nil
}

// MulBlockIKJ adds the product of one block of a (r1×c1) and b (c1×c2) into
// the caller-owned accumulator c (r1×c2):
//
//	c[i][j] += Σ_{k in block} a[i][k]·b[k][j]  for i, j in the block.
//
// Calling it for every Tile of a zeroed c in any order yields a×b.
//
// Errors:
//   - ErrNilMatrix, *matrix.DimensionError (a×b), ErrDimensionMismatch (c shape),
//     ErrInvalidTileSize, matrix.ErrOutOfRange (tile origin outside the matrices).
func MulBlockIKJ[T matrix.Number](c, a, b *matrix.Dense[T], t Tile) error {
	if err := matrix.ValidateMulCompatible(opMulBlockIKJ, a, b); err != nil {
		return kernelErrorf(opMulBlockIKJ, err)
	}
	if err := validateBlock(c, a.Rows(), a.Cols(), b.Cols(), t); err != nil {
		return kernelErrorf(opMulBlockIKJ, err)
	}
	t.Size = clampTile(t.Size, a.Rows(), a.Cols(), b.Cols())
	blockIKJ(c.Raw(), a.Raw(), b.Raw(), a.Rows(), a.Cols(), b.Cols(), t)

	return nil
}

// MulBlockTransposed adds one block of a (r1×c1) times bt-transposed into c,
// where bt (c2×c1) is the already transposed right operand:
//
//	c[i][j] += Σ_{k in block} a[i][k]·bt[j][k]  for i, j in the block.
//
// Errors: as MulBlockIKJ, with the shape check a.Cols == bt.Cols.
func MulBlockTransposed[T matrix.Number](c, a, bt *matrix.Dense[T], t Tile) error {
	if a == nil || bt == nil {
		return kernelErrorf(opMulBlockTransposed, matrix.ErrNilMatrix)
	}
	if a.Cols() != bt.Cols() {
		return kernelErrorf(opMulBlockTransposed, &matrix.DimensionError{
			Op: opMulBlockTransposed, ARows: a.Rows(), ACols: a.Cols(), BRows: bt.Cols(), BCols: bt.Rows(),
		})
	}
	if err := validateBlock(c, a.Rows(), a.Cols(), bt.Rows(), t); err != nil {
		return kernelErrorf(opMulBlockTransposed, err)
	}
	t.Size = clampTile(t.Size, a.Rows(), a.Cols(), bt.Rows())
	blockIJKTransposed(c.Raw(), a.Raw(), bt.Raw(), a.Rows(), a.Cols(), bt.Rows(), t)

	return nil
}

// validateBlock checks the accumulator shape (r1×c2) and the tile.
func validateBlock[T matrix.Number](c *matrix.Dense[T], r1, c1, c2 int, t Tile) error {
	if c == nil {
		return matrix.ErrNilMatrix
	}
	if c.Rows() != r1 || c.Cols() != c2 {
		return fmt.Errorf("accumulator %dx%d, want %dx%d: %w",
			c.Rows(), c.Cols(), r1, c2, matrix.ErrDimensionMismatch)
	}
	if err := validateTileSize(t.Size); err != nil {
		return err
	}
	if t.Row < 0 || t.Row >= r1 || t.Col < 0 || t.Col >= c2 || t.Inner < 0 || t.Inner >= c1 {
		return fmt.Errorf("tile origin (%d,%d,%d): %w", t.Row, t.Col, t.Inner, matrix.ErrOutOfRange)
	}

	return nil
}

// clampTile caps a tile at the largest dimension, so origin+size cannot
// overflow; a larger tile covers the same cells.
func clampTile(size, r1, c1, c2 int) int {
	return min(size, max(r1, c1, c2))
}

// blockIKJ is the unchecked i→k→j block kernel over flat row-major buffers.
// Ranges: i∈[Row,min(Row+Size,r1)), k∈[Inner,min(Inner+Size,c1)), j∈[Col,min(Col+Size,c2)).
func blockIKJ[T matrix.Number](cd, ad, bd []T, r1, c1, c2 int, t Tile) {
	iEnd := min(t.Row+t.Size, r1)
	kEnd := min(t.Inner+t.Size, c1)
	jEnd := min(t.Col+t.Size, c2)

	var av T
	for i := t.Row; i < iEnd; i++ {
		rowC := cd[i*c2+t.Col : i*c2+jEnd]
		for k := t.Inner; k < kEnd; k++ {
			av = ad[i*c1+k]
			rowB := bd[k*c2+t.Col : k*c2+jEnd]
			for j := range rowC {
				rowC[j] += av * rowB[j]
			}
		}
	}
}

// blockIJKTransposed is the unchecked i→j→k block kernel against bt (c2×c1).
// Each (i,j) of the block receives one scalar partial sum.
func blockIJKTransposed[T matrix.Number](cd, ad, btd []T, r1, c1, c2 int, t Tile) {
	iEnd := min(t.Row+t.Size, r1)
	jEnd := min(t.Col+t.Size, c2)
	kEnd := min(t.Inner+t.Size, c1)

	var sum T
	for i := t.Row; i < iEnd; i++ {
		segA := ad[i*c1+t.Inner : i*c1+kEnd]
		for j := t.Col; j < jEnd; j++ {
			segBT := btd[j*c1+t.Inner : j*c1+kEnd]
			sum = 0
			for k, av := range segA {
				sum += av * segBT[k]
			}
			cd[i*c2+j] += sum
		}
	}
}
