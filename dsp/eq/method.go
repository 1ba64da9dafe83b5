package eq

import "fmt"

// Method selects a multiband equalization strategy.
type Method int

const (
	// MethodDirect uses one full-buffer FFT with rectangular band masks.
	MethodDirect Method = iota
	// MethodSmooth uses the STFT with Gaussian band weighting.
	MethodSmooth
	// MethodSmoothBassComp is MethodSmooth plus spectral bass compression.
	MethodSmoothBassComp
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodDirect:
		return "direct"
	case MethodSmooth:
		return "smooth"
	case MethodSmoothBassComp:
		return "smooth_bass_comp"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Equalize runs the strategy selected by m on waveform. It is a convenience
// dispatcher over the EqualizeDirect, EqualizeSmooth and
// EqualizeSmoothBassComp functions.
func Equalize(m Method, waveform [][][]float64, sampleRate float64, gains Gains) ([][][]float64, error) {
	switch m {
	case MethodDirect:
		return EqualizeDirect(waveform, sampleRate, gains)
	case MethodSmooth:
		return EqualizeSmooth(waveform, sampleRate, gains)
	case MethodSmoothBassComp:
		return EqualizeSmoothBassComp(waveform, sampleRate, gains)
	default:
		return nil, fmt.Errorf("unknown equalizer method %d", int(m))
	}
}
