package eq

import "github.com/cwbudde/algo-vecmath"

// NormalizePeak rescales waveform in-place so its maximum absolute sample
// value does not exceed 1.0. Buffers already within unit amplitude pass
// through untouched; the relative balance between batches and channels is
// preserved because a single global factor is used.
func NormalizePeak(waveform [][][]float64) {
	peak := 0.0

	for _, chans := range waveform {
		for _, ch := range chans {
			if m := vecmath.MaxAbs(ch); m > peak {
				peak = m
			}
		}
	}

	if peak <= 1 {
		return
	}

	inv := 1 / peak
	for _, chans := range waveform {
		for _, ch := range chans {
			vecmath.ScaleBlockInPlace(ch, inv)
		}
	}
}

// newShaped allocates an output waveform matching the validated shape.
func newShaped(s shape) [][][]float64 {
	out := make([][][]float64, s.batch)
	flat := make([]float64, s.batch*s.channels*s.samples)

	for b := range out {
		out[b] = make([][]float64, s.channels)
		for c := range out[b] {
			off := (b*s.channels + c) * s.samples
			out[b][c] = flat[off : off+s.samples : off+s.samples]
		}
	}

	return out
}
