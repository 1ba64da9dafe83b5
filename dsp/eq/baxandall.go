package eq

import (
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

const (
	baxandallBassHz   = 100.0
	baxandallMidHz    = 1000.0
	baxandallTrebleHz = 10000.0
	baxandallMidQ     = 0.7
)

// EqualizeBaxandall applies a classic two-band tone control: a low shelf at
// 100 Hz and a high shelf at 10 kHz, both with cookbook slope S = 1. Unlike
// the spectral strategies it runs as a time-domain biquad cascade, so it has
// no frame latency and works for any buffer length. The result is
// peak-normalized.
func EqualizeBaxandall(waveform [][][]float64, sampleRate float64, bassDB, trebleDB float64) ([][][]float64, error) {
	dims, err := validateInput(waveform, sampleRate)
	if err != nil {
		return nil, err
	}

	chain := biquad.NewChain([]biquad.Coefficients{
		design.LowShelf(baxandallBassHz, bassDB, design.DefaultQ, sampleRate),
		design.HighShelf(baxandallTrebleHz, trebleDB, design.DefaultQ, sampleRate),
	})

	return runChain(waveform, dims, chain), nil
}

// BaxandallOption configures the three-band tone control.
type BaxandallOption func(*baxandallConfig)

type baxandallConfig struct {
	bassHz   float64
	midHz    float64
	trebleHz float64
	midQ     float64
}

// WithBassCorner sets the low-shelf corner frequency in Hz.
func WithBassCorner(hz float64) BaxandallOption {
	return func(c *baxandallConfig) { c.bassHz = hz }
}

// WithMidCenter sets the mid peak center frequency in Hz.
func WithMidCenter(hz float64) BaxandallOption {
	return func(c *baxandallConfig) { c.midHz = hz }
}

// WithTrebleCorner sets the high-shelf corner frequency in Hz.
func WithTrebleCorner(hz float64) BaxandallOption {
	return func(c *baxandallConfig) { c.trebleHz = hz }
}

// WithMidQ sets the quality factor of the mid peak.
func WithMidQ(q float64) BaxandallOption {
	return func(c *baxandallConfig) { c.midQ = q }
}

// EqualizeBaxandall3Band extends EqualizeBaxandall with a peaking mid band,
// defaulting to 1 kHz with Q 0.7. Corner frequencies and mid Q are
// adjustable through options.
func EqualizeBaxandall3Band(waveform [][][]float64, sampleRate float64, bassDB, midDB, trebleDB float64, opts ...BaxandallOption) ([][][]float64, error) {
	dims, err := validateInput(waveform, sampleRate)
	if err != nil {
		return nil, err
	}

	cfg := baxandallConfig{
		bassHz:   baxandallBassHz,
		midHz:    baxandallMidHz,
		trebleHz: baxandallTrebleHz,
		midQ:     baxandallMidQ,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	chain := biquad.NewChain([]biquad.Coefficients{
		design.LowShelf(cfg.bassHz, bassDB, design.DefaultQ, sampleRate),
		design.Peak(cfg.midHz, midDB, cfg.midQ, sampleRate),
		design.HighShelf(cfg.trebleHz, trebleDB, design.DefaultQ, sampleRate),
	})

	return runChain(waveform, dims, chain), nil
}

// runChain filters every channel through the cascade, resetting filter
// state between channels so they stay independent, then peak-normalizes.
func runChain(waveform [][][]float64, dims shape, chain *biquad.Chain) [][][]float64 {
	out := newShaped(dims)

	for b, chans := range waveform {
		for c, ch := range chans {
			copy(out[b][c], ch)
			chain.Reset()
			chain.ProcessBlock(out[b][c])
		}
	}

	NormalizePeak(out)

	return out
}
