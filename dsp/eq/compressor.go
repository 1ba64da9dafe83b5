package eq

import "github.com/cwbudde/algo-eq/dsp/core"

// SoftKneeCompressor is a static soft-knee gain computer. It maps an input
// level in dB to a gain change in dB: zero below the knee, a quadratic
// transition inside the knee, and a linear reduction proportional to the
// overshoot above it. It holds no envelope state and is safe to share.
type SoftKneeCompressor struct {
	ThresholdDB float64
	Ratio       float64
	KneeDB      float64
	MakeupDB    float64
}

// GainReductionDB returns the gain change in dB for a signal level in dB.
// The result is <= 0 for any ratio > 1.
func (c SoftKneeCompressor) GainReductionDB(levelDB float64) float64 {
	over := levelDB - c.ThresholdDB
	slope := 1/c.Ratio - 1

	if c.KneeDB <= 0 {
		if over <= 0 {
			return 0
		}

		return slope * over
	}

	halfKnee := c.KneeDB / 2

	switch {
	case over <= -halfKnee:
		return 0
	case over <= halfKnee:
		s := over + halfKnee
		return slope * s * s / (2 * c.KneeDB)
	default:
		return slope * over
	}
}

// GainReductionLinear returns the linear gain factor for a level in dB.
func (c SoftKneeCompressor) GainReductionLinear(levelDB float64) float64 {
	return core.DBToLinear(c.GainReductionDB(levelDB))
}

// MakeupLinear returns the configured makeup gain as a linear factor.
func (c SoftKneeCompressor) MakeupLinear() float64 {
	return core.DBToLinear(c.MakeupDB)
}
