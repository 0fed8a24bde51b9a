// SPDX-License-Identifier: MIT
// Package matmul: sentinel error set.
// Shape problems reuse the matrix sentinels (matrix.ErrDimensionMismatch,
// matrix.ErrNilMatrix, matrix.ErrOutOfRange); this file adds only the
// conditions that belong to the kernel family itself.

package matmul

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTileSize is returned when a tiled kernel or blocked helper is
	// given tileSize <= 0. A non-positive tile would never advance the block loops.
	ErrInvalidTileSize = errors.New("matmul: tile size must be > 0")

	// ErrUnknownKernel is returned by Lookup for a name not in the registry.
	ErrUnknownKernel = errors.New("matmul: unknown kernel")
)

// Operation name constants for unified error wrapping.
const (
	opMulIJK             = "MulIJK"
	opMulIKJ             = "MulIKJ"
	opMulTranspose       = "MulTranspose"
	opMulRef             = "MulRef"
	opTiled              = "Tiled"
	opTiledWithTranspose = "TiledWithTranspose"
	opMulBlockIKJ        = "MulBlockIKJ"
	opMulBlockTransposed = "MulBlockTransposed"
	opLookup             = "Lookup"
)

// kernelErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with err != nil.
func kernelErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
