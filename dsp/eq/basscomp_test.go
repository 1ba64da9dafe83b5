package eq

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/internal/testutil"
)

func TestCompressBassBinsBlend(t *testing.T) {
	// The reduction factor r is blended as magnitude * (1 + r): a bin far
	// below threshold (r = 1) doubles, a bin far above barely moves.
	mask := []bool{true, true, false}
	quiet := math.Pow(10, -50.0/20)
	loud := math.Pow(10, 40.0/20)
	frame := []complex128{complex(quiet, 0), complex(loud, 0), complex(1, 0)}

	compressBassBins(frame, mask, 1)

	if got, want := real(frame[0]), 2*quiet; math.Abs(got-want) > 1e-9 {
		t.Errorf("quiet masked bin = %g, want %g", got, want)
	}

	// 60 dB over threshold: r = 10^(-0.75*60/20), factor 1+r.
	r := math.Pow(10, -0.75*60/20)
	if got, want := real(frame[1]), loud*(1+r); math.Abs(got-want)/want > 1e-9 {
		t.Errorf("loud masked bin = %g, want %g", got, want)
	}

	if got := real(frame[2]); math.Abs(got-1) > 1e-12 {
		t.Errorf("unmasked bin = %g, want 1", got)
	}
}

func TestCompressBassBinsMakeup(t *testing.T) {
	frame := []complex128{complex(1, 0)}

	compressBassBins(frame, []bool{false}, 2)

	if got := real(frame[0]); math.Abs(got-2) > 1e-12 {
		t.Fatalf("makeup not applied: got %g, want 2", got)
	}
}

func TestEqualizeSmoothBassCompDoublesQuietBass(t *testing.T) {
	// A 100 Hz tone quiet enough to stay below the knee gets the full
	// additive blend (factor 2) plus makeup, while remaining far from the
	// normalization ceiling.
	const sampleRate = 8192
	sine := testutil.DeterministicSine(100, sampleRate, 1e-5, 16384)

	out, err := EqualizeSmoothBassComp(testutil.MonoBuffer(sine), sampleRate, Gains{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	factor := 2 * math.Pow(10, 5.0/20)
	want := make([]float64, len(sine))
	for i, v := range sine {
		want[i] = v * factor
	}

	// Tolerance covers reflect-padding leakage in the edge frames.
	testutil.RequireSliceNearlyEqual(t, out[0][0], want, 5e-6)
}

func TestEqualizeSmoothBassCompAppliesMakeupAboveBass(t *testing.T) {
	// A quiet 2048 Hz tone has negligible bass energy, so only the +5 dB
	// makeup gain applies and the output is a scaled copy of the input.
	const sampleRate = 8192
	sine := testutil.DeterministicSine(2048, sampleRate, 0.1, 16384)

	out, err := EqualizeSmoothBassComp(testutil.MonoBuffer(sine), sampleRate, Gains{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	makeup := math.Pow(10, 5.0/20)
	want := make([]float64, len(sine))
	for i, v := range sine {
		want[i] = v * makeup
	}

	testutil.RequireSliceNearlyEqual(t, out[0][0], want, 1e-3)
}

func TestEqualizeSmoothBassCompClampsGains(t *testing.T) {
	sine := testutil.DeterministicSine(1000, 8192, 0.1, 8192)
	mono := testutil.MonoBuffer(sine)

	atClamp, err := EqualizeSmoothBassComp(mono, 8192, Gains{Mid: 24})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	overClamp, err := EqualizeSmoothBassComp(mono, 8192, Gains{Mid: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, overClamp[0][0], atClamp[0][0], 1e-12)
}

func TestEqualizeSmoothBassCompNormalizesPeak(t *testing.T) {
	sine := testutil.DeterministicSine(1000, 8192, 1.0, 16384)

	out, err := EqualizeSmoothBassComp(testutil.MonoBuffer(sine), 8192, Gains{Mid: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if peak := testutil.PeakAbs(out); peak > 1+1e-12 {
		t.Fatalf("peak = %g, want <= 1", peak)
	}
}

func TestEqualizeSmoothBassCompPreservesShape(t *testing.T) {
	buf := testutil.SineBuffer(2, 2, 440, 44100, 0.5, 6000)

	out, err := EqualizeSmoothBassComp(buf, 44100, Gains{Bass: -6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 2 || len(out[0]) != 2 || len(out[0][0]) != 6000 {
		t.Fatalf("output shape %dx%dx%d, want 2x2x6000", len(out), len(out[0]), len(out[0][0]))
	}

	for _, chans := range out {
		for _, ch := range chans {
			testutil.RequireFinite(t, ch)
		}
	}
}

func TestEqualizeSmoothBassCompRejectsBadInput(t *testing.T) {
	_, err := EqualizeSmoothBassComp(nil, 44100, Gains{})
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("got %v, want ErrMissingInput", err)
	}

	tri := [][][]float64{{make([]float64, 64), make([]float64, 64), make([]float64, 64)}}

	_, err = EqualizeSmoothBassComp(tri, 44100, Gains{})
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Fatalf("got %v, want ErrUnsupportedChannels", err)
	}
}

func TestBassCompGainFieldZeroWidthGuard(t *testing.T) {
	// A 12 kHz sample rate makes the brilliance band run from 6 kHz to a
	// 6 kHz Nyquist; the width guard keeps the field finite.
	freqs := make([]float64, 1025)
	for i := range freqs {
		freqs[i] = float64(i) * 6000 / 1024
	}

	field := bassCompGainField(freqs, 12000, Gains{Brilliance: 6}.linearClamped(bassCompMinGainDB, bassCompMaxGainDB))

	testutil.RequireFinite(t, field)

	for k, v := range field {
		if v <= 0 {
			t.Fatalf("bin %d: field = %g, want > 0", k, v)
		}
	}
}
