// SPDX-License-Identifier: MIT

// Command dlops benchmarks and cross-checks the dense matrix-multiplication
// kernels of github.com/katalvlaran/dlops/matmul.
//
// Usage:
//
//	dlops bench  <rows_A> <cols_A> <rows_B> <cols_B> <tile_size> [flags]
//	dlops verify <rows_A> <cols_A> <rows_B> <cols_B> [flags]
//	dlops demo
//
// Any failure, including a verify run with mismatches, exits with status 1.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dlops: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Print(err)
		stop()
		os.Exit(1)
	}
}
