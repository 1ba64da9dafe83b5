package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// This function uses SIMD-optimized implementations when available (AVX2,
// SSE2, NEON). Scratch buffers are pooled internally, so in steady state this
// allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// FromPolar rebuilds complex bins from magnitude and phase into dst.
//
// All three slices must have the same length. dst may alias neither input.
func FromPolar(dst []complex128, mag, phase []float64) {
	for i := range dst {
		s, c := math.Sincos(phase[i])
		dst[i] = complex(mag[i]*c, mag[i]*s)
	}
}

// MagnitudeDB converts magnitudes to dB with an additive epsilon guard
// against log of zero: 20*log10(mag + eps).
func MagnitudeDB(mag []float64, eps float64) []float64 {
	out := make([]float64, len(mag))
	for i, m := range mag {
		out[i] = 20 * math.Log10(m+eps)
	}
	return out
}
