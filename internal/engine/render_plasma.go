package engine

import "math"

const (
	plasmaBlock = 2
	plasmaScale = 0.02
)

// renderPlasma sums four sinusoids per 2×2 block: two axis-aligned,
// one diagonal, one radial. Bass and mid bias hue and lightness.
func renderPlasma(f *frame) {
	t := f.time * 1.5

	w := int(f.w)
	h := int(f.h)
	for py := 0; py < h; py += plasmaBlock {
		for px := 0; px < w; px += plasmaBlock {
			x := float64(px) * plasmaScale
			y := float64(py) * plasmaScale

			v1 := math.Sin(x*10 + t*2)
			v2 := math.Sin(y*10 + t*3)
			v3 := math.Sin((x+y)*7 + t*1.5)

			dx := float64(px) - f.cx
			dy := float64(py) - f.cy
			v4 := math.Sin(math.Hypot(dx, dy)*plasmaScale*8 - t*4)

			v := (v1 + v2 + v3 + v4) / 4 // [-1,1]

			hue := f.hue + v*90 + f.audio.Bass*60
			light := 0.25 + (v*0.5+0.5)*0.35 + f.audio.Mid*0.15
			col := hsl(hue, 0.8, light)
			f.cv.BlendBlock(px, py, plasmaBlock, col, f.alpha)
		}
	}
}
