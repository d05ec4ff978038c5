package widgets

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibescope/vibescope/internal/engine"
)

func newTestVisual(t *testing.T) *Visual {
	t.Helper()

	eng, err := engine.New(80, 60)
	require.NoError(t, err)
	return NewVisual(eng)
}

func TestVisual_RenderResizesEngine(t *testing.T) {
	test.NewApp()

	v := newTestVisual(t)
	img := v.render(120, 90)

	require.NotNil(t, img)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())

	w, h := v.Engine().Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 90, h)
}

func TestVisual_RenderDegenerateSize(t *testing.T) {
	test.NewApp()

	v := newTestVisual(t)
	img := v.render(0, 0)

	require.NotNil(t, img)
	assert.Equal(t, 1, img.Bounds().Dx())

	// Engine keeps its surface.
	w, h := v.Engine().Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 60, h)
}

func TestVisual_UpdateSpectrumCopiesBuffer(t *testing.T) {
	test.NewApp()

	v := newTestVisual(t)
	win := test.NewWindow(v)
	defer win.Close()
	win.Resize(fyne.NewSize(80, 60))

	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = 200
	}
	v.UpdateSpectrum(buf)

	// Caller mutating its buffer must not affect the stored frame.
	buf[0] = 0
	assert.EqualValues(t, 200, v.spectrum[0])
}

func TestVisual_SnapshotReportsPattern(t *testing.T) {
	test.NewApp()

	v := newTestVisual(t)
	v.render(80, 60)

	st := v.Snapshot()
	assert.Equal(t, "fractal", st.Pattern)
}

func TestVisual_MinSizeZero(t *testing.T) {
	test.NewApp()

	v := newTestVisual(t)
	assert.Equal(t, fyne.NewSize(0, 0), v.MinSize())
}
