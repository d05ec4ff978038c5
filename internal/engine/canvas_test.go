package engine

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testRed = color.RGBA{R: 255, A: 255}

func TestCanvas_OutOfBoundsWritesIgnored(t *testing.T) {
	c := newCanvas(4, 4)

	// None of these may panic or touch the buffer.
	c.BlendPixel(-1, 0, testRed, 1)
	c.BlendPixel(0, -1, testRed, 1)
	c.BlendPixel(4, 0, testRed, 1)
	c.BlendPixel(0, 4, testRed, 1)
	c.ThickLine(-10, -10, 20, 20, 3, testRed, 1)
	c.Circle(2, 2, 50, testRed, 1)
	c.FillCircle(-5, -5, 3, testRed, 1)
	c.FillEllipse(2, 2, 40, 10, 0.5, testRed, 1)

	// In-bounds pixels along the line are still written.
	assert.EqualValues(t, 255, c.Image().RGBAAt(2, 2).R)
}

func TestCanvas_BlendPixelOpaque(t *testing.T) {
	c := newCanvas(2, 2)
	c.BlendPixel(1, 1, testRed, 1)

	r, g, b, _ := c.Image().At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestCanvas_BlendPixelHalf(t *testing.T) {
	c := newCanvas(2, 2)
	c.Fill(color.RGBA{A: 255}) // black
	c.BlendPixel(0, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)

	got := c.Image().RGBAAt(0, 0)
	assert.InDelta(t, 100, int(got.R), 1)
	assert.InDelta(t, 50, int(got.G), 1)
	assert.InDelta(t, 25, int(got.B), 1)
	assert.EqualValues(t, 255, got.A)
}

func TestCanvas_FadeDarkens(t *testing.T) {
	c := newCanvas(2, 2)
	c.Fill(color.RGBA{R: 200, G: 200, B: 200, A: 255})
	c.Fade(0.5)

	got := c.Image().RGBAAt(1, 0)
	assert.EqualValues(t, 100, got.R)
	assert.EqualValues(t, 100, got.G)
	assert.EqualValues(t, 100, got.B)
	assert.EqualValues(t, 255, got.A)
}

func TestCanvas_BlendBlockCoversSquare(t *testing.T) {
	c := newCanvas(4, 4)
	c.BlendBlock(1, 1, 2, testRed, 1)

	assert.EqualValues(t, 255, c.Image().RGBAAt(1, 1).R)
	assert.EqualValues(t, 255, c.Image().RGBAAt(2, 2).R)
	assert.Zero(t, c.Image().RGBAAt(0, 0).R)
	assert.Zero(t, c.Image().RGBAAt(3, 3).R)
}

func TestCanvas_ZeroLengthLine(t *testing.T) {
	c := newCanvas(4, 4)
	c.ThickLine(2, 2, 2, 2, 3, testRed, 1)
	assert.EqualValues(t, 255, c.Image().RGBAAt(2, 2).R)
}

func TestHSL_HueWraps(t *testing.T) {
	assert.Equal(t, hsl(0, 1, 0.5), hsl(360, 1, 0.5))
	assert.Equal(t, hsl(350, 1, 0.5), hsl(-10, 1, 0.5))
	assert.Equal(t, hsl(30, 1, 0.5), hsl(390, 1, 0.5))
}

func TestHSL_LightnessClamped(t *testing.T) {
	white := hsl(120, 0.5, 5)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, white)

	black := hsl(120, 0.5, -3)
	assert.Equal(t, color.RGBA{A: 255}, black)
}
