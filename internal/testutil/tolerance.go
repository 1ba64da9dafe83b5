package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// PeakAbs returns the maximum absolute value across all samples of a
// [batch][channels][samples] waveform.
func PeakAbs(buf [][][]float64) float64 {
	peak := 0.0
	for _, chans := range buf {
		for _, ch := range chans {
			for _, v := range ch {
				if a := math.Abs(v); a > peak {
					peak = a
				}
			}
		}
	}
	return peak
}

// BandEnergy sums squared magnitudes of the one-sided spectrum bins whose
// center frequency lies in [loHz, hiHz). freqs and spec must align.
func BandEnergy(spec []complex128, freqs []float64, loHz, hiHz float64) float64 {
	sum := 0.0
	for i, f := range freqs {
		if f >= loHz && f < hiHz {
			re, im := real(spec[i]), imag(spec[i])
			sum += re*re + im*im
		}
	}
	return sum
}
