package engine

import "math"

const voronoiBlock = 2

// renderVoronoi paints each 2×2 block with the color of its nearest
// seed. The seed set is small, so the scan is O(pixels × seeds) with a
// bounded constant.
func renderVoronoi(f *frame, seeds *SeedSet) {
	seeds.Step(f.cx, f.cy, f.minDim(), f.time, f.audio)
	if len(seeds.S) == 0 {
		return
	}

	maxDist := f.minDim() * 0.6

	w := int(f.w)
	h := int(f.h)
	for py := 0; py < h; py += voronoiBlock {
		for px := 0; px < w; px += voronoiBlock {
			x := float64(px)
			y := float64(py)

			best := 0
			bestD := math.MaxFloat64
			for i := range seeds.S {
				dx := seeds.S[i].X - x
				dy := seeds.S[i].Y - y
				d := dx*dx + dy*dy
				if d < bestD {
					bestD = d
					best = i
				}
			}

			dist := math.Sqrt(bestD)
			light := 0.55 * (1 - clamp01(dist/maxDist))
			col := hsl(f.hue+seeds.S[best].Hue, 0.8, 0.1+light)
			f.cv.BlendBlock(px, py, voronoiBlock, col, f.alpha)
		}
	}
}
