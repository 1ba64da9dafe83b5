package stft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-eq/dsp/window"
)

const (
	minFrameSize = 64
	normFloor    = 1e-12
)

// Transform computes centered short-time Fourier transforms of real signals
// and reconstructs them by windowed overlap-add.
//
// Analysis frames are centered on multiples of the hop length, with the
// signal extended by reflection at both edges so that a round trip through
// Analyze and Synthesize reproduces the input at its original length.
//
// A Transform owns its FFT plan and scratch buffers and is not safe for
// concurrent use; create one per goroutine.
type Transform struct {
	frameSize  int
	hop        int
	windowType window.Type

	plan         *algofft.Plan[complex128]
	windowCoeffs []float64
	timeFrame    []complex128
	freqFrame    []complex128
}

// Option configures a Transform.
type Option func(*config)

type config struct {
	windowType window.Type
}

// WithWindowType selects the analysis/synthesis window shape.
// Default is the periodic Hann window.
func WithWindowType(t window.Type) Option {
	return func(c *config) {
		c.windowType = t
	}
}

// New creates a Transform with the given frame size and hop length.
// frameSize must be a power of two and >= 64; hop must be in [1, frameSize).
func New(frameSize, hop int, opts ...Option) (*Transform, error) {
	if frameSize < minFrameSize || !isPowerOf2(frameSize) {
		return nil, fmt.Errorf("stft frame size must be power-of-two and >= %d: %d", minFrameSize, frameSize)
	}

	if hop <= 0 || hop >= frameSize {
		return nil, fmt.Errorf("stft hop must be in [1, %d): %d", frameSize, hop)
	}

	cfg := config{windowType: window.TypeHann}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	plan, err := algofft.NewPlan64(frameSize)
	if err != nil {
		return nil, fmt.Errorf("stft: failed to create FFT plan: %w", err)
	}

	coeffs := window.Generate(cfg.windowType, frameSize, window.WithPeriodic())
	if len(coeffs) != frameSize {
		return nil, fmt.Errorf("stft: window generation failed for size %d", frameSize)
	}

	return &Transform{
		frameSize:    frameSize,
		hop:          hop,
		windowType:   cfg.windowType,
		plan:         plan,
		windowCoeffs: coeffs,
		timeFrame:    make([]complex128, frameSize),
		freqFrame:    make([]complex128, frameSize),
	}, nil
}

// FrameSize returns the FFT frame size in samples.
func (t *Transform) FrameSize() int { return t.frameSize }

// Hop returns the hop length in samples.
func (t *Transform) Hop() int { return t.hop }

// Bins returns the number of one-sided frequency bins per frame.
func (t *Transform) Bins() int { return t.frameSize/2 + 1 }

// WindowType returns the configured window shape.
func (t *Transform) WindowType() window.Type { return t.windowType }

// NumFrames returns the number of analysis frames produced for an input
// of the given length.
func (t *Transform) NumFrames(length int) int {
	if length <= 0 {
		return 0
	}

	return 1 + length/t.hop
}

// Analyze computes the one-sided STFT of input.
//
// The result is indexed [frame][bin] with Bins() bins per frame. Frame f is
// centered on sample f*hop; samples beyond the signal edges are taken by
// reflection.
func (t *Transform) Analyze(input []float64) ([][]complex128, error) {
	if len(input) == 0 {
		return nil, nil
	}

	pad := t.frameSize / 2
	bins := t.Bins()
	frameCount := t.NumFrames(len(input))

	frames := make([][]complex128, frameCount)
	flat := make([]complex128, frameCount*bins)

	for frame := range frameCount {
		start := frame*t.hop - pad

		for i := range t.frameSize {
			x := input[reflectIndex(start+i, len(input))]
			t.timeFrame[i] = complex(x*t.windowCoeffs[i], 0)
		}

		err := t.plan.Forward(t.freqFrame, t.timeFrame)
		if err != nil {
			return nil, fmt.Errorf("stft: forward FFT failed: %w", err)
		}

		frames[frame] = flat[frame*bins : (frame+1)*bins : (frame+1)*bins]
		copy(frames[frame], t.freqFrame[:bins])
	}

	return frames, nil
}

// Synthesize reconstructs a real signal of the given length from one-sided
// STFT frames via windowed overlap-add with window-square normalization.
//
// The frames must have Bins() bins each, as produced by Analyze. length is
// the target sample count; the overlap-add result is trimmed (or zero-padded)
// to exactly that length.
func (t *Transform) Synthesize(frames [][]complex128, length int) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("stft synthesis length must be > 0: %d", length)
	}

	if len(frames) == 0 {
		return make([]float64, length), nil
	}

	bins := t.Bins()
	half := t.frameSize / 2
	pad := half

	paddedLen := (len(frames)-1)*t.hop + t.frameSize
	output := make([]float64, paddedLen)
	norm := make([]float64, paddedLen)

	for frame, spec := range frames {
		if len(spec) != bins {
			return nil, fmt.Errorf("stft frame %d has %d bins, want %d", frame, len(spec), bins)
		}

		// Rebuild the full conjugate-symmetric spectrum for a real IFFT.
		t.freqFrame[0] = complex(real(spec[0]), 0)
		t.freqFrame[half] = complex(real(spec[half]), 0)
		for k := 1; k < half; k++ {
			v := spec[k]
			t.freqFrame[k] = v
			t.freqFrame[t.frameSize-k] = complex(real(v), -imag(v))
		}

		err := t.plan.Inverse(t.timeFrame, t.freqFrame)
		if err != nil {
			return nil, fmt.Errorf("stft: inverse FFT failed: %w", err)
		}

		pos := frame * t.hop
		for i := range t.frameSize {
			w := t.windowCoeffs[i]
			output[pos+i] += real(t.timeFrame[i]) * w
			norm[pos+i] += w * w
		}
	}

	for i := range output {
		if norm[i] > normFloor {
			output[i] /= norm[i]
		}
	}

	// Drop the centering pad and fit to the requested length.
	out := make([]float64, length)
	copy(out, output[min(pad, paddedLen):])

	return out, nil
}

// reflectIndex folds idx into [0, n) by reflection at the signal edges
// without repeating the edge samples.
func reflectIndex(idx, n int) int {
	if n == 1 {
		return 0
	}

	period := 2 * (n - 1)

	idx %= period
	if idx < 0 {
		idx += period
	}

	if idx >= n {
		idx = period - idx
	}

	return idx
}

func isPowerOf2(v int) bool {
	return v > 0 && (v&(v-1)) == 0
}
