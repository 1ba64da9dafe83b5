package eq

import "github.com/cwbudde/algo-eq/dsp/core"

// BandCount is the fixed number of equalizer bands.
const BandCount = 7

// Band is a named frequency interval. The interval is half-open: a bin at
// exactly HighHz belongs to the next band.
type Band struct {
	Name   string
	LowHz  float64
	HighHz float64
}

// directBrillianceHighHz is the fixed brilliance ceiling of the direct
// strategy. The windowed strategies extend brilliance to Nyquist instead;
// the two tables are deliberately kept separate.
const directBrillianceHighHz = 20000.0

// DirectBands returns the band table of the direct FFT strategy, with the
// brilliance band capped at 20 kHz regardless of sample rate.
func DirectBands() [BandCount]Band {
	return bandTable(directBrillianceHighHz)
}

// SmoothBands returns the band table of the windowed strategies, with the
// brilliance band extending to the given Nyquist frequency.
func SmoothBands(nyquistHz float64) [BandCount]Band {
	return bandTable(nyquistHz)
}

func bandTable(brillianceHighHz float64) [BandCount]Band {
	return [BandCount]Band{
		{Name: "sub_bass", LowHz: 20, HighHz: 60},
		{Name: "bass", LowHz: 60, HighHz: 250},
		{Name: "low_mid", LowHz: 250, HighHz: 500},
		{Name: "mid", LowHz: 500, HighHz: 2000},
		{Name: "upper_mid", LowHz: 2000, HighHz: 4000},
		{Name: "presence", LowHz: 4000, HighHz: 6000},
		{Name: "brilliance", LowHz: 6000, HighHz: brillianceHighHz},
	}
}

// Gains holds the seven per-band gain adjustments in decibels, one per band
// of the table above. Hosts typically expose each in [-12, +12] dB; the
// windowed strategies additionally clamp on their own.
type Gains struct {
	SubBass    float64
	Bass       float64
	LowMid     float64
	Mid        float64
	UpperMid   float64
	Presence   float64
	Brilliance float64
}

// ordered returns the gains in band-table order.
func (g Gains) ordered() [BandCount]float64 {
	return [BandCount]float64{
		g.SubBass, g.Bass, g.LowMid, g.Mid, g.UpperMid, g.Presence, g.Brilliance,
	}
}

// linear converts the gains to linear amplitude factors without clamping.
func (g Gains) linear() [BandCount]float64 {
	out := g.ordered()
	for i, db := range out {
		out[i] = core.DBToLinear(db)
	}
	return out
}

// linearClampedMax converts to linear factors after limiting each gain to
// at most maxDB.
func (g Gains) linearClampedMax(maxDB float64) [BandCount]float64 {
	out := g.ordered()
	for i, db := range out {
		out[i] = core.DBToLinear(core.ClampMax(db, maxDB))
	}
	return out
}

// linearClamped converts to linear factors after limiting each gain to the
// inclusive range [minDB, maxDB].
func (g Gains) linearClamped(minDB, maxDB float64) [BandCount]float64 {
	out := g.ordered()
	for i, db := range out {
		out[i] = core.DBToLinear(core.Clamp(db, minDB, maxDB))
	}
	return out
}
