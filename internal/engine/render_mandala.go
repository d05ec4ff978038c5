package engine

import "math"

const (
	mandalaLayers   = 3
	mandalaSymmetry = 8
	mandalaPetals   = 2 // petals per symmetry fold per layer
)

// renderMandala draws nested rotational symmetry: layers of petal
// ellipses repeated around the center. Bass expands the layer radius,
// mid rotates the layers against each other.
func renderMandala(f *frame) {
	minDim := f.minDim()

	for layer := 0; layer < mandalaLayers; layer++ {
		lf := float64(layer)
		radius := minDim * (0.12 + 0.11*lf) * (1 + f.audio.Bass*0.35)
		spin := f.time * (0.2 + f.audio.Mid) * (1 - 0.4*lf)
		if layer%2 == 1 {
			spin = -spin
		}

		petalRx := radius * 0.30
		petalRy := radius * 0.12
		folds := mandalaSymmetry * mandalaPetals

		for i := 0; i < folds; i++ {
			angle := 2*math.Pi*float64(i)/float64(folds) + spin
			px := f.cx + math.Cos(angle)*radius
			py := f.cy + math.Sin(angle)*radius
			hue := f.hue + lf*40 + float64(i%mandalaPetals)*20

			// Radial gradient approximated by nested ellipses.
			for g := 0; g < 3; g++ {
				shrink := 1 - float64(g)*0.3
				col := hsl(hue, 0.85, 0.3+float64(g)*0.15)
				f.cv.FillEllipse(px, py, petalRx*shrink, petalRy*shrink, angle, col, f.alpha*0.55)
			}
		}
	}

	// Center disc.
	f.cv.FillCircle(f.cx, f.cy, minDim*0.03*(1+f.audio.Bass), hsl(f.hue, 0.6, 0.7), f.alpha)
}
