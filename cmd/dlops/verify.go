// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dlops/matrix"
	"github.com/katalvlaran/dlops/verify"
)

type verifyFlags struct {
	tiles         []int
	eps           float64
	maxMismatches int
	elemType      string
}

func newVerifyCmd() *cobra.Command {
	f := &verifyFlags{}
	cmd := &cobra.Command{
		Use:   "verify <rows_A> <cols_A> <rows_B> <cols_B>",
		Short: "Check every kernel against the reference on sequential matrices",
		Long: "verify multiplies two sequentially filled matrices with every kernel and compares each " +
			"result with the reference kernel. It exits with status 1 if any kernel disagrees.",
		Args: minArgsWithUsage(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseShape(args)
			if err != nil {
				return err
			}
			if s.colsA != s.rowsB {
				return &matrix.DimensionError{Op: "verify", ARows: s.rowsA, ACols: s.colsA, BRows: s.rowsB, BCols: s.colsB}
			}
			if f.eps < 0 {
				return fmt.Errorf("--eps %g: must be >= 0", f.eps)
			}
			if f.maxMismatches < 0 {
				return fmt.Errorf("--max-mismatches %d: must be >= 0", f.maxMismatches)
			}
			for _, t := range f.tiles {
				if t <= 0 {
					return fmt.Errorf("--tiles: %d: must be > 0", t)
				}
			}

			switch f.elemType {
			case typeInt:
				return runVerify[int](cmd.OutOrStdout(), s, f)
			case typeFloat32:
				return runVerify[float32](cmd.OutOrStdout(), s, f)
			case typeFloat64:
				return runVerify[float64](cmd.OutOrStdout(), s, f)
			default:
				return errUnknownType(f.elemType)
			}
		},
	}

	fl := cmd.Flags()
	fl.IntSliceVar(&f.tiles, "tiles", nil, "tile sizes for tiled kernels (default 1,3,7,16,max dimension)")
	fl.Float64Var(&f.eps, "eps", matrix.DefaultEpsilon, "absolute tolerance for float element types")
	fl.IntVar(&f.maxMismatches, "max-mismatches", matrix.DefaultMaxMismatches, "mismatches listed per kernel (0 = all)")
	addTypeFlag(fl, &f.elemType)

	return cmd
}

func runVerify[T matrix.Number](out io.Writer, s shapeArgs, f *verifyFlags) error {
	a, err := matrix.NewDense[T](s.rowsA, s.colsA)
	if err != nil {
		return err
	}
	b, err := matrix.NewDense[T](s.rowsB, s.colsB)
	if err != nil {
		return err
	}
	if err = a.FillSequential(); err != nil {
		return err
	}
	if err = b.FillSequential(); err != nil {
		return err
	}

	opts := []verify.Option{verify.WithEpsilon(f.eps), verify.WithMaxMismatches(f.maxMismatches)}
	if len(f.tiles) > 0 {
		opts = append(opts, verify.WithTiles(f.tiles...))
	}
	rep, err := verify.Check(a, b, opts...)
	if err != nil {
		return err
	}
	if err = rep.WriteText(out); err != nil {
		return err
	}

	return rep.Err()
}
