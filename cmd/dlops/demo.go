// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dlops/matmul"
	"github.com/katalvlaran/dlops/matrix"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Multiply a 2x3 matrix of ones by a 3x2 matrix of twos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(out io.Writer) error {
	a, err := matrix.NewDenseFilled(2, 3, 1)
	if err != nil {
		return err
	}
	b, err := matrix.NewDenseFilled(3, 2, 2)
	if err != nil {
		return err
	}
	c, err := matrix.NewDense[int](5, 5)
	if err != nil {
		return err
	}
	if err = c.FillSequential(); err != nil {
		return err
	}

	ijk, err := matmul.MulIJK(a, b)
	if err != nil {
		return err
	}
	ikj, err := matmul.MulIKJ(a, b)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Result (ijk):")
	if err = ijk.Print(out, matrix.DefaultPrintRows, matrix.DefaultPrintCols); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nResult (ikj):")
	if err = ikj.Print(out, matrix.DefaultPrintRows, matrix.DefaultPrintCols); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nMatrix C (5x5 filled sequentially):")

	return c.Print(out, matrix.DefaultPrintRows, matrix.DefaultPrintCols)
}
