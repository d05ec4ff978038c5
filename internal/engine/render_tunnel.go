package engine

import "math"

const (
	tunnelRings    = 18
	tunnelSides    = 48 // polygon segments per ring
	tunnelSpeed    = 0.015
	tunnelMaxScale = 0.75 // max ring radius as a fraction of min dimension
)

// renderTunnel marches concentric polygon rings along a depth
// parameter cycling mod 1; radius grows as the scale-inverse of depth.
// Bass perturbs the advance, mid rotates the rings.
func renderTunnel(f *frame) {
	advance := f.time * (tunnelSpeed / timeStep) * (1 + f.audio.Bass) * timeStep
	rotation := f.time * f.audio.Mid * 2

	minDim := f.minDim()

	// Back to front so near rings paint over far ones.
	for i := tunnelRings - 1; i >= 0; i-- {
		phase := math.Mod(float64(i)/tunnelRings+advance, 1.0)
		radius := phase * minDim * tunnelMaxScale
		if radius < 4 {
			continue
		}

		depth := 1 - phase
		thickness := 1 + int(2*depth)
		col := hsl(f.hue+phase*140, 0.8, 0.12+depth*0.4)

		for s := 0; s < tunnelSides; s++ {
			a1 := 2*math.Pi*float64(s)/tunnelSides + rotation
			a2 := 2*math.Pi*float64(s+1)/tunnelSides + rotation

			x1 := f.cx + math.Cos(a1)*radius
			y1 := f.cy + math.Sin(a1)*radius
			x2 := f.cx + math.Cos(a2)*radius
			y2 := f.cy + math.Sin(a2)*radius
			f.cv.ThickLine(x1, y1, x2, y2, thickness, col, f.alpha)
		}
	}
}
