package eq

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/stft"
)

const (
	smoothFrameSize = 2048
	smoothHop       = 1024

	// smoothMaxGainDB caps per-band boost; cuts are unlimited.
	smoothMaxGainDB = 12.0
)

// EqualizeSmooth applies multiband equalization in the short-time Fourier
// domain with Gaussian-shaped band weighting.
//
// Each band contributes a Gaussian bump centered on the band midpoint with
// sigma equal to a quarter of the band width, so adjacent bands blend into
// each other instead of meeting at hard edges. Band gains are clamped to at
// most +12 dB before conversion; the brilliance band extends to Nyquist.
// The same per-bin gain field is applied to every analysis frame, the
// signal is rebuilt by overlap-add, and the result is peak-normalized.
func EqualizeSmooth(waveform [][][]float64, sampleRate float64, gains Gains) ([][][]float64, error) {
	dims, err := validateInput(waveform, sampleRate)
	if err != nil {
		return nil, err
	}

	tr, err := stft.New(smoothFrameSize, smoothHop)
	if err != nil {
		return nil, fmt.Errorf("smooth equalizer: %w", err)
	}

	field := smoothGainField(tr.Bins(), sampleRate, gains.linearClampedMax(smoothMaxGainDB))

	out := newShaped(dims)

	for b, chans := range waveform {
		for c, ch := range chans {
			frames, err := tr.Analyze(ch)
			if err != nil {
				return nil, fmt.Errorf("smooth equalizer: %w", err)
			}

			for _, frame := range frames {
				for k := range frame {
					frame[k] *= complex(field[k], 0)
				}
			}

			rebuilt, err := tr.Synthesize(frames, dims.samples)
			if err != nil {
				return nil, fmt.Errorf("smooth equalizer: %w", err)
			}

			copy(out[b][c], rebuilt)
		}
	}

	NormalizePeak(out)

	return out, nil
}

// smoothGainField builds the per-bin gain field from overlapping Gaussian
// band bumps. Each band multiplies the field by 1 + (g-1)*exp(-((f-c)/s)^2/2)
// so a unity band gain leaves the field unchanged.
func smoothGainField(bins int, sampleRate float64, linear [BandCount]float64) []float64 {
	freqs := core.LinSpace(0, sampleRate/2, bins)

	field := make([]float64, bins)
	core.Ones(field)

	for i, band := range SmoothBands(sampleRate / 2) {
		center := (band.LowHz + band.HighHz) / 2
		sigma := (band.HighHz - band.LowHz) / 4
		g := linear[i]

		for k, f := range freqs {
			d := (f - center) / sigma
			field[k] *= 1 + (g-1)*math.Exp(-0.5*d*d)
		}
	}

	return field
}
