package eq

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/core"
)

var (
	// ErrMissingInput indicates an absent waveform or invalid sample rate.
	ErrMissingInput = errors.New("waveform and sample rate are required")
	// ErrInvalidShape indicates a waveform that is not a rectangular
	// rank-3 [batch][channel][sample] buffer with at least one sample.
	ErrInvalidShape = errors.New("waveform must have shape [batch][channel][sample]")
	// ErrUnsupportedChannels indicates a channel count other than 1 or 2.
	ErrUnsupportedChannels = errors.New("only mono and stereo waveforms are supported")
)

// shape describes a validated waveform buffer.
type shape struct {
	batch    int
	channels int
	samples  int
}

// validateInput checks the waveform/sample-rate contract shared by all
// strategies. It runs before any transform work and has no side effects.
func validateInput(waveform [][][]float64, sampleRate float64) (shape, error) {
	if waveform == nil {
		return shape{}, ErrMissingInput
	}

	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return shape{}, fmt.Errorf("%w: sample rate %f", ErrMissingInput, sampleRate)
	}

	if len(waveform) == 0 {
		return shape{}, fmt.Errorf("%w: empty batch dimension", ErrInvalidShape)
	}

	channels := len(waveform[0])
	if channels == 0 {
		return shape{}, fmt.Errorf("%w: empty channel dimension", ErrInvalidShape)
	}

	samples := len(waveform[0][0])
	if samples == 0 {
		return shape{}, fmt.Errorf("%w: empty sample dimension", ErrInvalidShape)
	}

	for b, chans := range waveform {
		if len(chans) != channels {
			return shape{}, fmt.Errorf("%w: batch %d has %d channels, batch 0 has %d",
				ErrInvalidShape, b, len(chans), channels)
		}

		for c, ch := range chans {
			if len(ch) != samples {
				return shape{}, fmt.Errorf("%w: batch %d channel %d has %d samples, expected %d",
					ErrInvalidShape, b, c, len(ch), samples)
			}
		}
	}

	if channels != 1 && channels != 2 {
		return shape{}, fmt.Errorf("%w: got %d channels", ErrUnsupportedChannels, channels)
	}

	return shape{batch: len(waveform), channels: channels, samples: samples}, nil
}
