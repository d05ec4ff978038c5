package engine

// Canonical frequency band boundaries, as fractions of the spectrum.
const (
	bandBassLow    = 0.0
	bandBassHigh   = 0.15
	bandMidLow     = 0.15
	bandMidHigh    = 0.5
	bandTrebleLow  = 0.5
	bandTrebleHigh = 1.0
)

// Features are the four scalars the renderers react to.
// All values are in [0,1].
type Features struct {
	Overall float64
	Bass    float64
	Mid     float64
	Treble  float64
}

// SpectrumAnalyzer reduces a frequency-magnitude frame into Features.
// It is stateless: every call is a pure function of its input, and the
// input slice is never retained.
type SpectrumAnalyzer struct{}

// Analyze computes overall and per-band intensities for one frame.
// Magnitudes are expected in the 0-255 range; an empty frame or an
// empty band yields intensity 0.
func (SpectrumAnalyzer) Analyze(freq []byte) Features {
	var a SpectrumAnalyzer
	return Features{
		Overall: a.Band(freq, 0, 1),
		Bass:    a.Band(freq, bandBassLow, bandBassHigh),
		Mid:     a.Band(freq, bandMidLow, bandMidHigh),
		Treble:  a.Band(freq, bandTrebleLow, bandTrebleHigh),
	}
}

// Band returns the normalized mean magnitude of the sub-range
// [lowRatio, highRatio) of the spectrum, clamped to [0,1].
func (SpectrumAnalyzer) Band(freq []byte, lowRatio, highRatio float64) float64 {
	n := len(freq)
	if n == 0 {
		return 0
	}

	lo := int(float64(n) * lowRatio)
	hi := int(float64(n) * highRatio)
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if hi <= lo {
		return 0
	}

	var sum float64
	for _, v := range freq[lo:hi] {
		sum += float64(v)
	}

	intensity := sum / float64(hi-lo) / 128.0
	if intensity > 1 {
		intensity = 1
	}
	return intensity
}
