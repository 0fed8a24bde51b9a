// SPDX-License-Identifier: MIT

package matmul

import (
	"fmt"

	"github.com/katalvlaran/dlops/matrix"
)

// Func is the uniform kernel call shape used by the registry:
// multiply(A, B, tileSize) -> C. Kernels that do not tile ignore tileSize.
type Func[T matrix.Number] func(a, b *matrix.Dense[T], tileSize int) (*matrix.Dense[T], error)

// Kernel is one named entry of the registry.
type Kernel[T matrix.Number] struct {
	Name  string  // stable identifier used by the CLI and reports ("ijk", "tiled", ...)
	Label string  // human-readable description for text reports
	Tiled bool    // true when tileSize affects the computation
	Fn    Func[T] // the kernel itself
}

// Kernel names, in canonical benchmark order.
const (
	NameIJK                = "ijk"
	NameIKJ                = "ikj"
	NameTranspose          = "transpose"
	NameTiled              = "tiled"
	NameTiledWithTranspose = "tiled-transpose"
	NameReference          = "ref"
)

// untiled adapts a two-operand kernel to Func.
func untiled[T matrix.Number](fn func(a, b *matrix.Dense[T]) (*matrix.Dense[T], error)) Func[T] {
	return func(a, b *matrix.Dense[T], _ int) (*matrix.Dense[T], error) { return fn(a, b) }
}

// Kernels returns the five performance candidates in canonical order:
// ijk (the baseline), ikj, transpose, tiled, tiled-transpose.
// The slice is freshly built on every call; callers may reorder or filter it.
func Kernels[T matrix.Number]() []Kernel[T] {
	return []Kernel[T]{
		{Name: NameIJK, Label: "i-j-k", Fn: untiled(MulIJK[T])},
		{Name: NameIKJ, Label: "i-k-j", Fn: untiled(MulIKJ[T])},
		{Name: NameTranspose, Label: "transposed", Fn: untiled(MulTranspose[T])},
		{Name: NameTiled, Label: "tiled", Tiled: true, Fn: Tiled[T]},
		{Name: NameTiledWithTranspose, Label: "tiled with transpose", Tiled: true, Fn: TiledWithTranspose[T]},
	}
}

// Reference returns the oracle kernel entry (MulRef). It is not part of
// Kernels because it is never a performance candidate.
func Reference[T matrix.Number]() Kernel[T] {
	return Kernel[T]{Name: NameReference, Label: "reference", Fn: untiled(MulRef[T])}
}

// Lookup finds a candidate or the reference kernel by name.
// Errors: ErrUnknownKernel.
func Lookup[T matrix.Number](name string) (Kernel[T], error) {
	for _, k := range Kernels[T]() {
		if k.Name == name {
			return k, nil
		}
	}
	if name == NameReference {
		return Reference[T](), nil
	}

	return Kernel[T]{}, kernelErrorf(opLookup, fmt.Errorf("%q: %w", name, ErrUnknownKernel))
}
