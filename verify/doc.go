// Package verify cross-checks the matmul kernels against the reference
// kernel.
//
// Check runs every candidate kernel on one pair of operands, tiled kernels
// once per tile size of a grid that covers single-scalar blocks, sizes that
// divide nothing, and a block larger than the matrix. Each result is compared
// with matmul.MulRef through matrix.Compare, so a failing run reports every
// (row, col, expected, actual) rather than stopping at the first difference.
package verify
