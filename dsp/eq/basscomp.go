package eq

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/spectrum"
	"github.com/cwbudde/algo-eq/dsp/stft"
)

const (
	// bassCompMinGainDB / bassCompMaxGainDB bound the per-band adjustment
	// symmetrically, unlike EqualizeSmooth which only caps boosts.
	bassCompMinGainDB = -24.0
	bassCompMaxGainDB = 24.0

	// Bass region treated by the spectral compressor, inclusive on both ends.
	bassLowHz  = 20.0
	bassHighHz = 250.0

	// magnitudeEps guards the dB conversion against log of zero.
	magnitudeEps = 1e-8
)

// bassCompressor is the fixed gain computer applied to bass-region bins.
var bassCompressor = SoftKneeCompressor{
	ThresholdDB: -20,
	Ratio:       4,
	KneeDB:      5,
	MakeupDB:    5,
}

// EqualizeSmoothBassComp is EqualizeSmooth followed by per-frame spectral
// compression of the bass region.
//
// The Gaussian band weighting matches EqualizeSmooth except that gains are
// clamped to [-24, +24] dB and zero-width bands fall back to one percent of
// their upper edge. After the gain field is applied, each frame's bin
// magnitudes between 20 and 250 Hz run through a fixed soft-knee gain
// computer (-20 dB threshold, 4:1 ratio, 5 dB knee) whose linear reduction
// factor r is blended additively: magnitude * (1 + r). The blend is
// intended behavior: bins far below threshold (r = 1) are doubled while
// heavily reduced bins (r near 0) pass almost unchanged. The whole frame
// then receives +5 dB makeup gain; phases are untouched. The result is
// rebuilt by overlap-add and peak-normalized.
func EqualizeSmoothBassComp(waveform [][][]float64, sampleRate float64, gains Gains) ([][][]float64, error) {
	dims, err := validateInput(waveform, sampleRate)
	if err != nil {
		return nil, err
	}

	tr, err := stft.New(smoothFrameSize, smoothHop)
	if err != nil {
		return nil, fmt.Errorf("bass-comp equalizer: %w", err)
	}

	bins := tr.Bins()
	freqs := core.LinSpace(0, sampleRate/2, bins)
	field := bassCompGainField(freqs, sampleRate, gains.linearClamped(bassCompMinGainDB, bassCompMaxGainDB))

	bassMask := make([]bool, bins)
	for k, f := range freqs {
		bassMask[k] = f >= bassLowHz && f <= bassHighHz
	}

	makeup := bassCompressor.MakeupLinear()

	out := newShaped(dims)

	for b, chans := range waveform {
		for c, ch := range chans {
			frames, err := tr.Analyze(ch)
			if err != nil {
				return nil, fmt.Errorf("bass-comp equalizer: %w", err)
			}

			for _, frame := range frames {
				for k := range frame {
					frame[k] *= complex(field[k], 0)
				}

				compressBassBins(frame, bassMask, makeup)
			}

			rebuilt, err := tr.Synthesize(frames, dims.samples)
			if err != nil {
				return nil, fmt.Errorf("bass-comp equalizer: %w", err)
			}

			copy(out[b][c], rebuilt)
		}
	}

	NormalizePeak(out)

	return out, nil
}

// compressBassBins blends the soft-knee reduction factor into the magnitude
// of masked bins (magnitude * (1 + r)) and applies the makeup factor to
// every bin, preserving phases.
func compressBassBins(frame []complex128, bassMask []bool, makeup float64) {
	mag := spectrum.Magnitude(frame)
	phase := spectrum.Phase(frame)

	for k := range mag {
		if bassMask[k] {
			levelDB := 20 * math.Log10(mag[k]+magnitudeEps)
			mag[k] *= 1 + bassCompressor.GainReductionLinear(levelDB)
		}

		mag[k] *= makeup
	}

	spectrum.FromPolar(frame, mag, phase)
}

// bassCompGainField is smoothGainField with a wider sigma (half the band
// width) and a guard for degenerate zero-width bands.
func bassCompGainField(freqs []float64, sampleRate float64, linear [BandCount]float64) []float64 {
	field := make([]float64, len(freqs))
	core.Ones(field)

	for i, band := range SmoothBands(sampleRate / 2) {
		center := (band.LowHz + band.HighHz) / 2
		width := band.HighHz - band.LowHz
		if width == 0 {
			width = 0.01 * band.HighHz
		}
		sigma := width / 2
		g := linear[i]

		for k, f := range freqs {
			d := (f - center) / sigma
			field[k] *= 1 + (g-1)*math.Exp(-0.5*d*d)
		}
	}

	return field
}
