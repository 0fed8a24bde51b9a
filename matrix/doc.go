// Package matrix provides the dense container used by the dlops kernels.
//
// The matrix package provides:
//
//   - Dense[T], a rectangular row-major buffer of any Number element type,
//     with checked At/Set accessors and flat Raw access for kernels.
//   - Deterministic fills: FillSequential (row-major index) and FillRandom
//     (seeded uniform integers in an inclusive range).
//   - Transpose, Compare/AllClose (exact for integers, epsilon for floats),
//     and a truncated Print for diagnostics.
//
// Misuse (non-positive shapes, out-of-range indices, incompatible operands)
// is reported through sentinel errors matched with errors.Is; nothing in the
// public surface panics on user input.
//
// See the examples in this package and matmul for usage patterns.
package matrix
