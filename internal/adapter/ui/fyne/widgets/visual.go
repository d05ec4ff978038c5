// Package widgets provides the Fyne widget hosting the visual engine.
package widgets

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/vibescope/vibescope/internal/engine"
)

// Visual is a widget that renders the audio-reactive visual field.
// Spectrum frames arrive through UpdateSpectrum; the raster callback
// drives the engine whenever Fyne repaints.
type Visual struct {
	widget.BaseWidget

	raster *canvas.Raster

	eng      *engine.Engine
	spectrum []byte
	mu       sync.Mutex
}

// NewVisual creates the widget around an existing engine. The engine
// is resized to match the raster whenever the widget size changes.
func NewVisual(eng *engine.Engine) *Visual {
	v := &Visual{eng: eng}
	v.raster = canvas.NewRaster(v.render)
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget.
func (v *Visual) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// MinSize returns the minimum size of the visual.
func (v *Visual) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

// UpdateSpectrum stores the frame for the next paint and triggers a
// refresh. The slice is copied; the caller may reuse its buffer.
// Safe to call from the presenter's tick goroutine.
func (v *Visual) UpdateSpectrum(data []byte) {
	v.mu.Lock()
	v.spectrum = append(v.spectrum[:0], data...)
	v.mu.Unlock()

	fyne.Do(v.raster.Refresh)
}

// Snapshot exposes the engine's introspection state for tuning UI.
func (v *Visual) Snapshot() engine.Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.eng.Snapshot()
}

// Engine returns the hosted engine for parameter tuning. Callers must
// not invoke Render or Resize on it; the widget owns the frame loop.
func (v *Visual) Engine() *engine.Engine {
	return v.eng
}

// render advances the engine one frame and hands Fyne the surface.
func (v *Visual) render(w, h int) image.Image {
	v.mu.Lock()
	defer v.mu.Unlock()

	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	if ew, eh := v.eng.Size(); ew != w || eh != h {
		v.eng.Resize(w, h)
	}

	v.eng.Render(v.spectrum)
	return v.eng.Image()
}
