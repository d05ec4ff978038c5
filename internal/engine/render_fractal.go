package engine

import "math"

const (
	fractalBlock    = 2
	fractalBaseIter = 20
	fractalIterSpan = 30 // extra iterations at full intensity
	fractalEscape   = 4.0
)

// renderFractal draws an escape-time Julia set, 2×2 block-quantized.
// Bass and mid perturb the complex constant; intensity raises the
// iteration cap. The loop is bounded by the cap for any zoom value,
// including zero or negative ones.
func renderFractal(f *frame, p FractalParams) {
	maxIter := fractalBaseIter + int(f.audio.Overall*fractalIterSpan)

	cRe := p.CRe + f.audio.Bass*0.1*math.Sin(f.time)
	cIm := p.CIm + f.audio.Mid*0.1*math.Cos(f.time*0.7)

	scale := 3.0 / (f.minDim() * p.Zoom)

	w := int(f.w)
	h := int(f.h)
	for py := 0; py < h; py += fractalBlock {
		for px := 0; px < w; px += fractalBlock {
			zRe := (float64(px)-f.cx)*scale + p.OffsetX
			zIm := (float64(py)-f.cy)*scale + p.OffsetY

			iter := 0
			for ; iter < maxIter; iter++ {
				re2 := zRe * zRe
				im2 := zIm * zIm
				if re2+im2 > fractalEscape {
					break
				}
				zRe, zIm = re2-im2+cRe, 2*zRe*zIm+cIm
			}

			if iter >= maxIter {
				// Inside the set: leave the faded background.
				continue
			}

			t := float64(iter) / float64(maxIter)
			col := hsl(f.hue+t*120+float64(iter)*6, 0.85, 0.15+t*0.55)
			f.cv.BlendBlock(px, py, fractalBlock, col, f.alpha)
		}
	}
}
