package eq

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// EqualizeDirect applies multiband equalization through a single
// full-buffer FFT per channel.
//
// Each of the seven band gains is converted to a linear factor (no
// clamping) and applied as a rectangular mask over the one-sided spectrum:
// every bin whose center frequency falls inside a band is scaled by that
// band's factor. The brilliance band is capped at 20 kHz, so content
// between 20 kHz and Nyquist passes through unchanged. The inverse
// transform restores the original sample count and the result is
// peak-normalized.
//
// Rectangular masks give exact band edges at the cost of possible ringing;
// EqualizeSmooth trades edge precision for smooth transitions.
func EqualizeDirect(waveform [][][]float64, sampleRate float64, gains Gains) ([][][]float64, error) {
	dims, err := validateInput(waveform, sampleRate)
	if err != nil {
		return nil, err
	}

	// Arbitrary sample counts are handled by zero-padding the transform
	// to the next power of two and truncating after inversion.
	fftSize := core.NextPowerOf2(dims.samples)
	half := fftSize / 2
	bins := half + 1

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("direct equalizer: failed to create FFT plan: %w", err)
	}

	freqs := core.LinSpace(0, sampleRate/2, bins)
	gainField := directGainField(freqs, gains.linear())

	out := newShaped(dims)
	timeBuf := make([]complex128, fftSize)
	freqBuf := make([]complex128, fftSize)

	for b, chans := range waveform {
		for c, ch := range chans {
			for i := range fftSize {
				if i < len(ch) {
					timeBuf[i] = complex(ch[i], 0)
				} else {
					timeBuf[i] = 0
				}
			}

			err := plan.Forward(freqBuf, timeBuf)
			if err != nil {
				return nil, fmt.Errorf("direct equalizer: forward FFT failed: %w", err)
			}

			// Scale the one-sided bins and their conjugate mirrors so the
			// inverse transform stays real.
			freqBuf[0] *= complex(gainField[0], 0)
			freqBuf[half] *= complex(gainField[half], 0)
			for k := 1; k < half; k++ {
				g := complex(gainField[k], 0)
				freqBuf[k] *= g
				freqBuf[fftSize-k] *= g
			}

			err = plan.Inverse(timeBuf, freqBuf)
			if err != nil {
				return nil, fmt.Errorf("direct equalizer: inverse FFT failed: %w", err)
			}

			for i := range out[b][c] {
				out[b][c][i] = real(timeBuf[i])
			}
		}
	}

	NormalizePeak(out)

	return out, nil
}

// directGainField builds per-bin linear factors from disjoint band masks.
// Bins outside every band (below 20 Hz or at/above the brilliance ceiling)
// keep unity gain.
func directGainField(freqs []float64, linear [BandCount]float64) []float64 {
	field := make([]float64, len(freqs))
	core.Ones(field)

	for i, band := range DirectBands() {
		for k, f := range freqs {
			if f >= band.LowHz && f < band.HighHz {
				field[k] *= linear[i]
			}
		}
	}

	return field
}
