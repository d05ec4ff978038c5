package engine

import "math"

const (
	dnaStep      = 6  // strand sample spacing in pixels
	dnaRungStep  = 40 // pixels between connecting rungs
	dnaFrequency = 0.02
	dnaNodeEvery = 24
)

// renderDNA draws two phase-offset sinusoidal strands with periodic
// connecting rungs and node glyphs. Bass sets strand amplitude, treble
// the rung thickness.
func renderDNA(f *frame) {
	amp := f.h * 0.15 * (1 + f.audio.Bass*0.8)
	rungWidth := 1 + int(f.audio.Treble*3)

	strandY := func(x float64, phase float64) float64 {
		return f.cy + math.Sin(x*dnaFrequency+f.time*2+phase)*amp
	}

	// Strands.
	for _, s := range [2]struct {
		phase float64
		hue   float64
	}{{0, 0}, {math.Pi, 180}} {
		var px, py float64
		for x := 0.0; x <= f.w; x += dnaStep {
			y := strandY(x, s.phase)
			if x > 0 {
				col := hsl(f.hue+s.hue+x*0.1, 0.85, 0.5)
				f.cv.ThickLine(px, py, x, y, 2, col, f.alpha)
			}
			px, py = x, y
		}
	}

	// Rungs and nodes.
	for x := 0.0; x <= f.w; x += dnaRungStep {
		y1 := strandY(x, 0)
		y2 := strandY(x, math.Pi)
		col := hsl(f.hue+x*0.1+90, 0.7, 0.4)
		f.cv.ThickLine(x, y1, x, y2, rungWidth, col, f.alpha*0.8)
	}
	for x := 0.0; x <= f.w; x += dnaNodeEvery {
		for _, s := range [2]struct {
			phase float64
			hue   float64
		}{{0, 0}, {math.Pi, 180}} {
			y := strandY(x, s.phase)
			f.cv.FillCircle(x, y, 3, hsl(f.hue+s.hue, 0.6, 0.7), f.alpha)
		}
	}
}
