// Package dlops is a small laboratory for dense matrix multiplication:
// one row-major container and several kernels that compute the same product
// while walking memory differently, plus the tooling to time and cross-check
// them.
//
// What is inside?
//
//   - matrix/: generic row-major Dense[T] container, seeded fills,
//     bounded printing, transpose and tolerant comparison.
//   - matmul/: i-j-k, i-k-j, transposed, tiled, tiled with transpose and
//     the reference triple loop, plus the per-block helpers.
//   - bench/: best-of-N timing, GFLOPS and performance change against the
//     i-j-k baseline, text and JSON reports.
//   - verify/: runs every kernel over a grid of tile sizes and lists every
//     cell that disagrees with the reference.
//   - cmd/dlops: the command line front end (bench, verify, demo).
//
// Quick start:
//
//	a, _ := matrix.NewDenseFilled(2, 3, 1)
//	b, _ := matrix.NewDenseFilled(3, 2, 2)
//	c, _ := matmul.Tiled(a, b, 16) // 2x2 of sixes
//
// All kernels are single-threaded, validate shapes before doing any work and
// return errors instead of panicking.
package dlops
