// Package bench times the matmul kernels against each other.
//
// Run multiplies the same pair of operands with every selected kernel, keeps
// the best wall-clock time of WithRepeat(n) runs, and derives:
//
//   - GFLOPS = 2·rowsA·colsA·colsB / (seconds · 1e9)
//   - performance change vs the first kernel = (t_base − t_var) / t_base · 100
//
// The Report records the platform (GOOS/GOARCH, CPU count, vector
// extensions from golang.org/x/sys/cpu) and renders as text or JSON.
package bench
