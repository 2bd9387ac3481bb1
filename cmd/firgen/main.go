// Command firgen builds golden test data for firtest from a WAV file.
//
// Usage:
//
//	firgen [flags] -in audio.wav
//
// The first channel of the WAV file becomes the input sample sequence. A
// Hamming-windowed high-pass FIR is designed for the file's sample rate,
// quantized to 16-bit coefficients and applied with a floating-point
// reference filter to produce the golden output. The three sequences are
// written as input.dat, coeffs.dat and golden_output.dat.
//
// With -wav-out the integer runtime's output is also written as audio,
// normalized to 16-bit full scale.
//
// Examples:
//
//	firgen -in media/birds.wav
//	firgen -in birds.wav -out testdata -cutoff 2000 -wav-out hpf.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-fir/dsp/filter/design/firwin"
	"github.com/cwbudde/algo-fir/dsp/filter/fir"
	"github.com/cwbudde/algo-fir/internal/wavio"
	"github.com/cwbudde/algo-fir/measure/golden"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("firgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "input WAV file (required)")
	out := fs.String("out", ".", "output directory for the .dat files")
	taps := fs.Int("taps", fir.DefaultTaps, "filter tap count (odd)")
	cutoff := fs.Float64("cutoff", golden.DefaultCutoff, "high-pass cutoff in Hz")
	wavOut := fs.String("wav-out", "", "optional path for the filtered audio")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: firgen [flags] -in audio.wav\n\n")
		fmt.Fprintf(stderr, "Writes %s, %s and %s for firtest.\n\n", golden.InputFile, golden.CoeffsFile, golden.GoldenFile)
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if *in == "" {
		fmt.Fprintf(stderr, "error: -in is required\n")
		fs.Usage()
		return 1
	}

	clip, err := readClip(*in)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "read %s: %d samples, %d Hz, %d-bit, %d channel(s)\n",
		*in, len(clip.Samples), clip.SampleRate, clip.BitDepth, clip.Channels)

	fx, err := golden.Generate(clip.Samples, float64(clip.SampleRate),
		golden.WithTaps(*taps), golden.WithCutoff(*cutoff))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := fx.Save(*out); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "wrote %d-tap %.0f Hz high-pass fixture to %s\n", len(fx.Coeffs), *cutoff, *out)
	if err := printResponse(stdout, fx.Coeffs, *cutoff, float64(clip.SampleRate)); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *wavOut != "" {
		if err := writeFiltered(*wavOut, fx, clip.SampleRate); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote filtered audio to %s\n", *wavOut)
	}
	return 0
}

// printResponse reports the quantized design's gain relative to Nyquist,
// the centre of a high-pass pass band.
func printResponse(w io.Writer, coeffs []int32, cutoff, sampleRate float64) error {
	f, err := fir.New(fir.WithTaps(len(coeffs)))
	if err != nil {
		return err
	}
	if err := f.Load(coeffs); err != nil {
		return err
	}
	nyq := sampleRate / 2
	_, err = fmt.Fprintf(w, "gain re Nyquist: %.2f dB at %.0f Hz, %.2f dB at DC\n",
		f.RelativeDB(cutoff, nyq, sampleRate), cutoff, f.RelativeDB(0, nyq, sampleRate))
	return err
}

func readClip(path string) (*wavio.Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return wavio.Read(f)
}

func writeFiltered(path string, fx *golden.Fixture, sampleRate int) error {
	y, err := fir.Apply(fx.Coeffs, fx.Input)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := wavio.Write(f, wavio.Normalize(y, firwin.DefaultFullScale), sampleRate, 16); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
