// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Element types selectable with --type.
const (
	typeInt     = "int"
	typeFloat32 = "float32"
	typeFloat64 = "float64"
)

// addTypeFlag registers --type on fl.
func addTypeFlag(fl *pflag.FlagSet, p *string) {
	fl.StringVar(p, "type", typeInt, "element type: "+typeInt+", "+typeFloat32+" or "+typeFloat64)
}

// errUnknownType formats the error for an unsupported --type value.
func errUnknownType(t string) error {
	return fmt.Errorf("--type %q: want %s, %s or %s", t, typeInt, typeFloat32, typeFloat64)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dlops",
		Short:         "Compare dense matrix-multiplication kernels",
		Long:          "dlops times the i-j-k, i-k-j, transposed and tiled matmul kernels and checks them against a reference.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBenchCmd(), newVerifyCmd(), newDemoCmd())

	return root
}

// minArgsWithUsage is cobra.MinimumNArgs with the usage line in the error,
// so a short invocation prints how to call the command.
func minArgsWithUsage(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("expected %d arguments, got %d\nUsage: %s", n, len(args), cmd.UseLine())
		}

		return nil
	}
}

// shapeArgs parses rows_A cols_A rows_B cols_B from the first four args.
type shapeArgs struct {
	rowsA, colsA, rowsB, colsB int
}

func parseShape(args []string) (shapeArgs, error) {
	names := [4]string{"rows_A", "cols_A", "rows_B", "cols_B"}
	var vals [4]int
	for i, name := range names {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return shapeArgs{}, fmt.Errorf("%s: %q is not an integer", name, args[i])
		}
		vals[i] = v
	}

	return shapeArgs{rowsA: vals[0], colsA: vals[1], rowsB: vals[2], colsB: vals[3]}, nil
}
