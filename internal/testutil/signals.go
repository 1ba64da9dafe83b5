package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// MonoBuffer wraps a single-channel signal as a [1][1][samples] waveform.
func MonoBuffer(samples []float64) [][][]float64 {
	return [][][]float64{{samples}}
}

// StereoBuffer wraps left/right signals as a [1][2][samples] waveform.
func StereoBuffer(left, right []float64) [][][]float64 {
	return [][][]float64{{left, right}}
}

// SineBuffer builds a [batch][channels][samples] waveform where every channel
// carries the same deterministic sine.
func SineBuffer(batch, channels int, freqHz, sampleRate, amplitude float64, length int) [][][]float64 {
	out := make([][][]float64, batch)
	for b := range out {
		out[b] = make([][]float64, channels)
		for c := range out[b] {
			out[b][c] = DeterministicSine(freqHz, sampleRate, amplitude, length)
		}
	}
	return out
}
