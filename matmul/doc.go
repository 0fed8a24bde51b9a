// Package matmul implements a family of dense matrix-multiplication kernels
// that compute the same product C = A × B and differ only in how they walk
// memory.
//
// The kernels offered are:
//
//   - MulIJK
//
//   - Method: rows → columns → shared dimension, scalar accumulator.
//
//   - Access: B is read column-wise (stride = B.Cols); one write per C cell.
//
//   - MulIKJ
//
//   - Method: rows → shared dimension → columns.
//
//   - Access: A, B and C are read row-wise; C is updated on every inner step.
//
//   - MulTranspose
//
//   - Method: transpose B once, then rows → columns → shared on Bᵀ.
//
//   - Access: both inner operands are row-wise at the cost of an O(n²) copy.
//
//   - Tiled / TiledWithTranspose
//
//   - Method: cubic blocks of side tileSize over (rows, columns, shared),
//     running the i-k-j block kernel on B or the i-j-k block kernel on Bᵀ.
//
//   - Access: each block's working set is reused while it is cache resident.
//
//   - MulRef
//
//   - The plain triple loop, used only as the correctness oracle.
//
// # Element types
//
// Every kernel is generic over matrix.Number (integers and floats) and
// accumulates in the element type. Integer results are identical across all
// kernels and tile sizes. Float results may differ from MulRef by rounding
// only, because tiling reorders the summation; compare them with
// matrix.AllClose.
//
// # Errors
//
// Operand shapes are validated before any work: A.Cols != B.Rows yields a
// *matrix.DimensionError (errors.Is matrix.ErrDimensionMismatch), and a
// non-positive tile size yields ErrInvalidTileSize. Kernels never panic on
// user input.
//
// # Concurrency
//
// All kernels are single-threaded and synchronous. Operands are only read,
// so the same inputs may be shared by concurrent calls; the blocked helpers
// MulBlockIKJ/MulBlockTransposed write into a caller-owned accumulator and
// must not be run concurrently on overlapping output regions.
package matmul
