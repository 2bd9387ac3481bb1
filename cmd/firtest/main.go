// Command firtest checks the integer FIR runtime against golden data.
//
// Usage:
//
//	firtest [flags]
//
// It reads an input sample file, a coefficient file and a golden output
// file (whitespace-separated signed integers), filters the input and
// compares each output sample with its golden value. The run fails at the
// first sample that differs by more than the tolerance.
//
// Exit status is 0 on pass and 1 on mismatch or when any file cannot be
// read.
//
// Examples:
//
//	firtest
//	firtest -dir testdata/hpf
//	firtest -input x.dat -coeffs h.dat -golden y.dat -tol 0
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-fir/dsp/filter/fir"
	"github.com/cwbudde/algo-fir/measure/golden"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("firtest", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("dir", ".", "directory holding the default data files")
	input := fs.String("input", "", "input sample file (default <dir>/"+golden.InputFile+")")
	coeffs := fs.String("coeffs", "", "coefficient file (default <dir>/"+golden.CoeffsFile+")")
	gold := fs.String("golden", "", "golden output file (default <dir>/"+golden.GoldenFile+")")
	tol := fs.Int64("tol", golden.DefaultTolerance, "accepted absolute difference per sample")
	taps := fs.Int("taps", fir.DefaultTaps, "filter tap count")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: firtest [flags]\n\n")
		fmt.Fprintf(stderr, "Filters the input with the coefficients and compares against golden output.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	fx, err := golden.Load(
		orDefault(*input, *dir, golden.InputFile),
		orDefault(*coeffs, *dir, golden.CoeffsFile),
		orDefault(*gold, *dir, golden.GoldenFile),
	)
	if err != nil {
		if errors.Is(err, golden.ErrMissingInputResource) {
			fmt.Fprintf(stderr, "error: cannot open data files: %v\n", err)
		} else {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}

	res, err := golden.Run(fx, golden.WithTolerance(*tol), golden.WithFilterTaps(*taps))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := res.Report(stdout); err != nil {
		fmt.Fprintf(stderr, "error: failed to write report: %v\n", err)
	}
	if !res.Pass {
		return 1
	}
	return 0
}

func orDefault(path, dir, name string) string {
	if path != "" {
		return path
	}
	return filepath.Join(dir, name)
}
