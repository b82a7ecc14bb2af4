// SPDX-License-Identifier: MIT

// Command fourrussians multiplies the two Boolean matrices stored in a JSON
// file with the Four Russians method.
//
//	fourrussians [flags] input.json
//
// The input holds {"left": [[...]], "right": [[...]]}; cells are true/false
// or 0/1. With -o the product is written as {"result": [[...]]}; otherwise it
// is logged. Any failure exits non-zero and writes no output file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/katalvlaran/fourrussians/boolio"
	"github.com/katalvlaran/fourrussians/boolmatrix"
	"github.com/katalvlaran/fourrussians/fourrussians"
)

var errWorkers = errors.New("workers must be >= 1")

type config struct {
	input   string
	output  string
	workers int
	strict  bool
	table   bool
	timing  bool
}

func main() {
	output := flag.String("o", "", "write the result to `file` instead of logging it")
	verbose := flag.Int("v", 0, "log verbosity (1: per multiplication, 2: per block)")
	workers := flag.Int("workers", 1, "number of blocks processed concurrently")
	strict := flag.Bool("strict", false, "reject operands whose shape does not match")
	table := flag.Bool("table", false, "render the result as a table on stdout")
	timing := flag.Bool("timing", false, "print a timing report on stdout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] input.json\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(0)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	stdr.SetVerbosity(*verbose)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))

	cfg := config{
		input:   flag.Arg(0),
		output:  *output,
		workers: *workers,
		strict:  *strict,
		table:   *table,
		timing:  *timing,
	}
	if err := run(cfg, logger, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run loads both operands, multiplies them and emits the product.
func run(cfg config, logger logr.Logger, stdout io.Writer) error {
	if cfg.workers < 1 {
		return fmt.Errorf("-workers=%d: %w", cfg.workers, errWorkers)
	}
	timing := NewTiming()

	logger.V(1).Info("reading operands", "path", cfg.input)
	left, right, err := boolio.ReadPairFile(cfg.input)
	if err != nil {
		return err
	}

	n := len(left)
	mOpts := []boolmatrix.Option{boolmatrix.WithObserver(logger)}
	if cfg.strict {
		mOpts = append(mOpts, boolmatrix.WithStrictShape())
	}
	a, err := boolmatrix.NewFromData(n, n, left, mOpts...)
	if err != nil {
		return fmt.Errorf("left: %w", err)
	}
	b, err := boolmatrix.NewFromData(n, n, right, mOpts...)
	if err != nil {
		return fmt.Errorf("right: %w", err)
	}
	timing.Sample("Read", fmt.Sprintf("%dx%d", n, n))

	c, err := fourrussians.Multiply(a, b,
		fourrussians.WithLogger(logger),
		fourrussians.WithWorkers(cfg.workers))
	if err != nil {
		return err
	}
	bs := fourrussians.BlockSize(a.Rows())
	timing.Sample("Multiply", fmt.Sprintf("block=%d blocks=%d", bs, fourrussians.NumBlocks(a.Rows(), bs)))

	result := c.RawData()
	if cfg.output != "" {
		if err = boolio.WriteMatrixFile(cfg.output, result); err != nil {
			return err
		}
		logger.V(1).Info("result written", "path", cfg.output)
	} else {
		logger.Info("multiplication result", "result", result)
	}
	if cfg.table {
		if err = boolio.WriteTable(stdout, result); err != nil {
			return err
		}
	}
	timing.Sample("Write", cfg.output)

	if cfg.timing {
		timing.Print(stdout)
	}

	return nil
}
