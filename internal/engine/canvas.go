package engine

import (
	"image"
	"image/color"
	"math"
)

// Canvas is the pixel surface the renderers paint into. All drawing
// goes through alpha-blended writes so two patterns can compose into
// the same frame during a cross-fade.
type Canvas struct {
	img  *image.RGBA
	w, h int
}

func newCanvas(w, h int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		w:   w,
		h:   h,
	}
}

// Image exposes the underlying buffer for presentation.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Fill paints the whole surface with an opaque color.
func (c *Canvas) Fill(col color.RGBA) {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = 255
	}
}

// Fade darkens the whole surface toward black by the given alpha.
// This is the trailing-fade veil painted once per frame.
func (c *Canvas) Fade(alpha float64) {
	keep := 1 - clamp01(alpha)
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = uint8(float64(pix[i]) * keep)
		pix[i+1] = uint8(float64(pix[i+1]) * keep)
		pix[i+2] = uint8(float64(pix[i+2]) * keep)
		pix[i+3] = 255
	}
}

// BlendPixel blends a color into one pixel with the given alpha.
func (c *Canvas) BlendPixel(x, y int, col color.RGBA, alpha float64) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	a := clamp01(alpha)
	i := y*c.img.Stride + x*4
	pix := c.img.Pix
	pix[i] = uint8(float64(pix[i])*(1-a) + float64(col.R)*a)
	pix[i+1] = uint8(float64(pix[i+1])*(1-a) + float64(col.G)*a)
	pix[i+2] = uint8(float64(pix[i+2])*(1-a) + float64(col.B)*a)
	pix[i+3] = 255
}

// BlendBlock blends a size×size block anchored at (x, y). The per-pixel
// renderers use 2×2 blocks to bound full-surface scan cost.
func (c *Canvas) BlendBlock(x, y, size int, col color.RGBA, alpha float64) {
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			c.BlendPixel(x+dx, y+dy, col, alpha)
		}
	}
}

// ThickLine draws a line of the given pixel thickness.
func (c *Canvas) ThickLine(x1, y1, x2, y2 float64, thickness int, col color.RGBA, alpha float64) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		c.BlendPixel(int(x1), int(y1), col, alpha)
		return
	}

	perpX := -dy / length
	perpY := dx / length
	steps := int(length) + 1

	for t := -thickness / 2; t <= thickness/2; t++ {
		ox := float64(t) * perpX
		oy := float64(t) * perpY
		for i := 0; i <= steps; i++ {
			progress := float64(i) / float64(steps)
			c.BlendPixel(int(x1+dx*progress+ox), int(y1+dy*progress+oy), col, alpha)
		}
	}
}

// Circle draws a circle outline.
func (c *Canvas) Circle(cx, cy, radius float64, col color.RGBA, alpha float64) {
	steps := int(2 * math.Pi * radius)
	if steps < 36 {
		steps = 36
	}
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		c.BlendPixel(int(cx+math.Cos(angle)*radius), int(cy+math.Sin(angle)*radius), col, alpha)
	}
}

// FillCircle draws a filled circle.
func (c *Canvas) FillCircle(cx, cy, radius float64, col color.RGBA, alpha float64) {
	r := int(radius)
	if r < 0 {
		return
	}
	icx, icy := int(cx), int(cy)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.BlendPixel(icx+dx, icy+dy, col, alpha)
			}
		}
	}
}

// FillEllipse draws a filled ellipse with radii (rx, ry) rotated by rot
// radians around its center.
func (c *Canvas) FillEllipse(cx, cy, rx, ry, rot float64, col color.RGBA, alpha float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	ext := math.Max(rx, ry)
	cosR := math.Cos(-rot)
	sinR := math.Sin(-rot)

	for dy := -ext; dy <= ext; dy++ {
		for dx := -ext; dx <= ext; dx++ {
			// Rotate back into ellipse space.
			ex := dx*cosR - dy*sinR
			ey := dx*sinR + dy*cosR
			if (ex*ex)/(rx*rx)+(ey*ey)/(ry*ry) <= 1 {
				c.BlendPixel(int(cx+dx), int(cy+dy), col, alpha)
			}
		}
	}
}
