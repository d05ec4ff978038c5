package engine

import "math"

const (
	raysBaseCount = 12
	raysBassSpan  = 24 // extra rays at full bass
	raysSpinSpeed = 0.3
)

// renderRays draws radial gradient segments from the center with small
// chromatic offset replicas. Bass scales count, treble width, overall
// intensity length.
func renderRays(f *frame) {
	count := raysBaseCount + int(f.audio.Bass*raysBassSpan)
	length := f.minDim() * (0.3 + f.audio.Overall*0.55)
	width := 1 + int(f.audio.Treble*4)

	// Chromatic replicas: the main ray plus two slightly rotated,
	// hue-shifted copies.
	offsets := [3]struct {
		angle float64
		hue   float64
		alpha float64
	}{
		{-0.01, -18, 0.35},
		{0.01, 18, 0.35},
		{0, 0, 1},
	}

	for i := 0; i < count; i++ {
		base := 2*math.Pi*float64(i)/float64(count) + f.time*raysSpinSpeed

		for _, off := range offsets {
			angle := base + off.angle
			hue := f.hue + float64(i)*360/float64(count)*0.25 + off.hue

			// Gradient along the ray, bright at the center.
			const segs = 6
			for s := 0; s < segs; s++ {
				r0 := length * float64(s) / segs
				r1 := length * float64(s+1) / segs
				light := 0.6 * (1 - float64(s)/segs)
				col := hsl(hue, 0.9, 0.1+light)

				x1 := f.cx + math.Cos(angle)*r0
				y1 := f.cy + math.Sin(angle)*r0
				x2 := f.cx + math.Cos(angle)*r1
				y2 := f.cy + math.Sin(angle)*r1
				f.cv.ThickLine(x1, y1, x2, y2, width, col, f.alpha*off.alpha)
			}
		}
	}
}
