package engine

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// hsl converts hue (degrees, any value, taken mod 360), saturation and
// lightness (both clamped to [0,1]) to a displayable color.
func hsl(hueDeg, s, l float64) color.RGBA {
	h := math.Mod(hueDeg, 360)
	if h < 0 {
		h += 360
	}

	r, g, b := colorful.Hsl(h, clamp01(s), clamp01(l)).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
