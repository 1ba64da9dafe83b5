package eq

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-eq/internal/testutil"
)

func TestEqualizeBaxandallIdentityAtZeroGain(t *testing.T) {
	// A 0 dB shelf reduces to a unity biquad, so the cascade is a bit-exact
	// passthrough.
	sine := testutil.DeterministicSine(440, 44100, 0.5, 2048)

	out, err := EqualizeBaxandall(testutil.MonoBuffer(sine), 44100, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out[0][0], sine, 1e-12)
}

func TestEqualizeBaxandallBassBoost(t *testing.T) {
	// 30 Hz lies well below the 100 Hz shelf corner and gets most of the
	// +6 dB; a 5 kHz tone in the flat midrange must stay put.
	low := testutil.DeterministicSine(30, 44100, 0.25, 44100)
	mid := testutil.DeterministicSine(5000, 44100, 0.25, 44100)

	lowOut, err := EqualizeBaxandall(testutil.MonoBuffer(low), 44100, 6, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	midOut, err := EqualizeBaxandall(testutil.MonoBuffer(mid), 44100, 6, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rms(lowOut[0][0]) < rms(low)*1.5 {
		t.Errorf("bass boost too weak: in %g, out %g", rms(low), rms(lowOut[0][0]))
	}

	if ratio := rms(midOut[0][0]) / rms(mid); ratio < 0.95 || ratio > 1.05 {
		t.Errorf("midrange moved by bass shelf: ratio %g", ratio)
	}
}

func TestEqualizeBaxandallTrebleCut(t *testing.T) {
	high := testutil.DeterministicSine(18000, 44100, 0.25, 44100)

	out, err := EqualizeBaxandall(testutil.MonoBuffer(high), 44100, 0, -12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rms(out[0][0]) > rms(high)*0.5 {
		t.Errorf("treble cut too weak: in %g, out %g", rms(high), rms(out[0][0]))
	}
}

func TestEqualizeBaxandallChannelsIndependent(t *testing.T) {
	// Filter state must reset between channels: identical channels must
	// produce identical output.
	sine := testutil.DeterministicSine(200, 44100, 0.25, 8192)
	left := make([]float64, len(sine))
	right := make([]float64, len(sine))
	copy(left, sine)
	copy(right, sine)

	out, err := EqualizeBaxandall(testutil.StereoBuffer(left, right), 44100, 4, -4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out[0][0], out[0][1], 0)
}

func TestEqualizeBaxandall3BandMidBoost(t *testing.T) {
	mid := testutil.DeterministicSine(1000, 44100, 0.1, 44100)

	out, err := EqualizeBaxandall3Band(testutil.MonoBuffer(mid), 44100, 0, 6, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rms(out[0][0]) < rms(mid)*1.5 {
		t.Errorf("mid boost too weak: in %g, out %g", rms(mid), rms(out[0][0]))
	}
}

func TestEqualizeBaxandall3BandOptions(t *testing.T) {
	sine := testutil.DeterministicSine(3000, 44100, 0.1, 44100)
	mono := testutil.MonoBuffer(sine)

	defaults, err := EqualizeBaxandall3Band(mono, 44100, 0, 6, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Moving the mid center onto the tone must boost it more than the
	// default 1 kHz center does.
	centered, err := EqualizeBaxandall3Band(mono, 44100, 0, 6, 0,
		WithMidCenter(3000), WithMidQ(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rms(centered[0][0]) <= rms(defaults[0][0]) {
		t.Fatalf("re-centered mid peak did not boost more: default %g, centered %g",
			rms(defaults[0][0]), rms(centered[0][0]))
	}
}

func TestEqualizeBaxandallRejectsBadInput(t *testing.T) {
	_, err := EqualizeBaxandall(nil, 44100, 0, 0)
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("got %v, want ErrMissingInput", err)
	}

	tri := [][][]float64{{make([]float64, 64), make([]float64, 64), make([]float64, 64)}}

	_, err = EqualizeBaxandall3Band(tri, 44100, 0, 0, 0)
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Fatalf("got %v, want ErrUnsupportedChannels", err)
	}
}
