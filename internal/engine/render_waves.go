package engine

import "math"

const (
	waveRings     = 5
	waveSides     = 72
	waveGridStep  = 28 // ripple sample spacing in pixels
	waveBaseAmp   = 0.04
	waveBassSpan  = 0.12
)

// renderWaves draws concentric radially-modulated polygons (a sum of
// sinusoids on the radius) plus a sampled grid ripple. Bass sets the
// wave amplitude, treble the ripple frequency.
func renderWaves(f *frame) {
	minDim := f.minDim()
	amp := minDim * (waveBaseAmp + f.audio.Bass*waveBassSpan)

	for k := 0; k < waveRings; k++ {
		base := minDim * 0.12 * float64(k+1)
		hue := f.hue + float64(k)*24
		col := hsl(hue, 0.85, 0.5-float64(k)*0.05)

		var px, py float64
		for s := 0; s <= waveSides; s++ {
			a := 2 * math.Pi * float64(s) / waveSides
			r := base +
				amp*math.Sin(a*3+f.time*2+float64(k)) +
				amp*0.5*math.Sin(a*5-f.time*3) +
				amp*0.3*math.Sin(a*8+f.time*1.3)

			x := f.cx + math.Cos(a)*r
			y := f.cy + math.Sin(a)*r
			if s > 0 {
				f.cv.ThickLine(px, py, x, y, 2, col, f.alpha)
			}
			px, py = x, y
		}
	}

	// Grid ripple: dots displaced by a radial wave, frequency raised
	// by treble.
	freqScale := 0.02 + f.audio.Treble*0.06
	for gy := waveGridStep / 2; gy < int(f.h); gy += waveGridStep {
		for gx := waveGridStep / 2; gx < int(f.w); gx += waveGridStep {
			dx := float64(gx) - f.cx
			dy := float64(gy) - f.cy
			dist := math.Hypot(dx, dy)

			ripple := math.Sin(dist*freqScale - f.time*4)
			size := 1 + (ripple*0.5+0.5)*2.5
			col := hsl(f.hue+dist*0.15, 0.7, 0.3+(ripple*0.5+0.5)*0.3)
			f.cv.FillCircle(float64(gx), float64(gy)+ripple*4, size, col, f.alpha*0.8)
		}
	}
}
