// Package fyne provides the Fyne UI adapter: the window hosting the
// visual widget and the presenter driving it.
package fyne

import (
	"fmt"
	"sync"

	fyneapp "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/vibescope/vibescope/internal/adapter/ui/fyne/widgets"
	"github.com/vibescope/vibescope/internal/engine"
)

// Window defaults.
const (
	appName       = "Vibescope"
	defaultWidth  = 960
	defaultHeight = 600
)

// MainWindow is the application window. It is a dumb view: the
// presenter feeds it spectrum frames and pattern names, and it only
// displays them.
type MainWindow struct {
	app    fyneapp.App
	window fyneapp.Window

	visual *widgets.Visual

	closeOnce sync.Once
	onClose   func()
}

var _ View = (*MainWindow)(nil)

// NewMainWindow creates the window around an engine-hosting widget.
func NewMainWindow(app fyneapp.App, eng *engine.Engine) *MainWindow {
	w := &MainWindow{
		app:    app,
		visual: widgets.NewVisual(eng),
	}

	w.window = app.NewWindow(appName)
	w.window.SetContent(container.NewStack(w.visual))
	w.window.Resize(fyneapp.NewSize(defaultWidth, defaultHeight))
	w.window.SetCloseIntercept(func() {
		w.Close()
	})

	return w
}

// Visual returns the engine-hosting widget.
func (w *MainWindow) Visual() *widgets.Visual {
	return w.visual
}

// UpdateSpectrum implements View by forwarding to the visual widget.
func (w *MainWindow) UpdateSpectrum(data []byte) {
	w.visual.UpdateSpectrum(data)
}

// Snapshot implements View by forwarding to the visual widget.
func (w *MainWindow) Snapshot() engine.Status {
	return w.visual.Snapshot()
}

// SetPatternName reflects the active pattern in the window title.
// Called from the presenter's tick goroutine, so the title update is
// marshalled onto the UI thread.
func (w *MainWindow) SetPatternName(name string) {
	fyneapp.Do(func() {
		w.window.SetTitle(fmt.Sprintf("%s - %s", appName, name))
	})
}

// SetOnClose registers a callback invoked once when the window closes.
func (w *MainWindow) SetOnClose(fn func()) {
	w.onClose = fn
}

// ShowAndRun shows the window and blocks until it closes.
func (w *MainWindow) ShowAndRun() {
	w.window.ShowAndRun()
}

// Close closes the window, firing the close callback exactly once.
func (w *MainWindow) Close() {
	w.closeOnce.Do(func() {
		if w.onClose != nil {
			w.onClose()
		}
		w.window.Close()
	})
}
