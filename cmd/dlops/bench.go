// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dlops/bench"
	"github.com/katalvlaran/dlops/matrix"
)

type benchFlags struct {
	seed     int64
	minVal   int
	maxVal   int
	repeat   int
	elemType string
	jsonPath string
	kernels  []string
}

func newBenchCmd() *cobra.Command {
	f := &benchFlags{}
	cmd := &cobra.Command{
		Use:   "bench <rows_A> <cols_A> <rows_B> <cols_B> <tile_size>",
		Short: "Time every kernel on two random matrices",
		Args:  minArgsWithUsage(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseShape(args)
			if err != nil {
				return err
			}
			tile, err := strconv.Atoi(args[4])
			if err != nil {
				return fmt.Errorf("tile_size: %q is not an integer", args[4])
			}
			if s.colsA != s.rowsB {
				return &matrix.DimensionError{Op: "bench", ARows: s.rowsA, ACols: s.colsA, BRows: s.rowsB, BCols: s.colsB}
			}

			switch f.elemType {
			case typeInt:
				return runBench[int](cmd.Context(), cmd.OutOrStdout(), s, tile, f)
			case typeFloat32:
				return runBench[float32](cmd.Context(), cmd.OutOrStdout(), s, tile, f)
			case typeFloat64:
				return runBench[float64](cmd.Context(), cmd.OutOrStdout(), s, tile, f)
			default:
				return errUnknownType(f.elemType)
			}
		},
	}

	fl := cmd.Flags()
	fl.Int64Var(&f.seed, "seed", matrix.DefaultSeed, "seed of the random fill")
	fl.IntVar(&f.minVal, "min", matrix.DefaultRandMin, "smallest random element (inclusive)")
	fl.IntVar(&f.maxVal, "max", matrix.DefaultRandMax, "largest random element (inclusive)")
	fl.IntVar(&f.repeat, "repeat", bench.DefaultRepeat, "runs per kernel; the fastest is reported")
	addTypeFlag(fl, &f.elemType)
	fl.StringVar(&f.jsonPath, "json", "", "also write the report as JSON to this path")
	fl.StringSliceVar(&f.kernels, "kernels", nil, "kernels to time, in order (default all; the first is the baseline)")

	return cmd
}

func runBench[T matrix.Number](ctx context.Context, out io.Writer, s shapeArgs, tile int, f *benchFlags) error {
	if f.repeat < 1 {
		return fmt.Errorf("--repeat %d: must be >= 1", f.repeat)
	}
	a, err := matrix.NewDense[T](s.rowsA, s.colsA)
	if err != nil {
		return err
	}
	b, err := matrix.NewDense[T](s.rowsB, s.colsB)
	if err != nil {
		return err
	}
	// A and B draw from one seeded stream so they differ but stay reproducible.
	fill := []matrix.Option{
		matrix.WithRand(rand.New(rand.NewSource(f.seed))),
		matrix.WithRange(f.minVal, f.maxVal),
	}
	if err = a.FillRandom(fill...); err != nil {
		return err
	}
	if err = b.FillRandom(fill...); err != nil {
		return err
	}

	opts := []bench.Option{bench.WithRepeat(f.repeat)}
	if f.kernels != nil {
		opts = append(opts, bench.WithKernels(f.kernels...))
	}
	rep, err := bench.Run(ctx, a, b, tile, opts...)
	if err != nil {
		return err
	}
	if err = rep.WriteText(out); err != nil {
		return err
	}
	if f.jsonPath != "" {
		if err = rep.SaveJSON(f.jsonPath); err != nil {
			return err
		}
		log.Printf("report written to %s", f.jsonPath)
	}

	return nil
}
