// Command eqinfo prints the equalizer band layout and the per-band gain
// behavior of the multiband strategies.
//
// Usage:
//
//	eqinfo [flags]
//
// Examples:
//
//	eqinfo
//	eqinfo -rate 48000
//	eqinfo -rate 48000 -method smooth -gains 3,0,0,-2,0,0,6
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/eq"
)

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	method := flag.String("method", "direct", "band table to show: direct, smooth or smooth_bass_comp")
	gainsFlag := flag.String("gains", "", "seven comma-separated band gains in dB (default all zero)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the seven-band equalizer layout for a given sample rate\n")
		fmt.Fprintf(os.Stderr, "and strategy, with the effective per-band gains.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eqinfo -rate 48000\n")
		fmt.Fprintf(os.Stderr, "  eqinfo -method smooth -gains 3,0,0,-2,0,0,6\n")
	}
	flag.Parse()

	if *rate <= 0 {
		fmt.Fprintf(os.Stderr, "error: sample rate must be > 0, got %g\n", *rate)
		os.Exit(1)
	}

	gains, err := parseGains(*gainsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var bands [eq.BandCount]eq.Band
	switch strings.ToLower(strings.TrimSpace(*method)) {
	case "direct":
		bands = eq.DirectBands()
	case "smooth", "smooth_bass_comp":
		bands = eq.SmoothBands(*rate / 2)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown method %q (direct, smooth, smooth_bass_comp)\n", *method)
		os.Exit(1)
	}

	printBands(bands, gains, *rate)
}

func parseGains(s string) ([eq.BandCount]float64, error) {
	var out [eq.BandCount]float64

	s = strings.TrimSpace(s)
	if s == "" {
		return out, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != eq.BandCount {
		return out, fmt.Errorf("need %d comma-separated gains, got %d", eq.BandCount, len(parts))
	}

	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, fmt.Errorf("invalid gain %q: %w", p, err)
		}
		out[i] = v
	}

	return out, nil
}

func printBands(bands [eq.BandCount]eq.Band, gains [eq.BandCount]float64, rate float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Band\tLow [Hz]\tHigh [Hz]\tCenter [Hz]\tGain [dB]\tGain [lin]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "----\t--------\t---------\t-----------\t---------\t----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for i, b := range bands {
		if _, err := fmt.Fprintf(tw, "%s\t%.0f\t%.0f\t%.1f\t%+.2f\t%.4f\n",
			b.Name,
			b.LowHz,
			b.HighHz,
			(b.LowHz+b.HighHz)/2,
			gains[i],
			math.Pow(10, gains[i]/20),
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	fmt.Printf("\nsample rate %g Hz, Nyquist %g Hz\n", rate, rate/2)
}
