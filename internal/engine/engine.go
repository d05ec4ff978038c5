// Package engine renders a continuously evolving, audio-reactive
// visual field: ten procedural patterns cross-faded on a timer, driven
// by a per-frame frequency-magnitude array.
//
// The engine is single-threaded and cooperative. The caller drives one
// Render per animation tick and presents the surface afterwards;
// concurrent Render/Resize calls on one instance must be serialized by
// the caller.
package engine

import (
	"fmt"
	"image"
	"math"

	"github.com/vibescope/vibescope/internal/domain"
)

const (
	timeStep         = 0.02
	hueBaseStep      = 0.5 // degrees per frame
	hueBassStep      = 2.0 // extra degrees per frame at full bass
	fadeAlpha        = 40.0 / 255
	fadeAlphaSwarm   = 64.0 / 255
	fractalZoomRate  = 0.002
	defaultFractalRe = -0.7
	defaultFractalIm = 0.27015
)

// FractalParams are the live-tunable Julia-set parameters.
type FractalParams struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64
	CRe     float64
	CIm     float64
}

// Status is a read-only snapshot of the engine for external tuning UI.
type Status struct {
	Pattern            string
	NextPattern        string
	Transitioning      bool
	TransitionProgress float64
	PatternDuration    int
	TransitionSpeed    float64
	HueBase            float64
	Fractal            FractalParams
}

// Engine owns the pixel surface, the entity pools and the scheduler.
type Engine struct {
	canvas *Canvas
	width  int
	height int
	cx, cy float64

	time    float64
	hueBase float64

	analyzer SpectrumAnalyzer
	sched    *Scheduler

	particles *ParticleField
	bubbles   *BubblePool
	seeds     *SeedSet

	fractal FractalParams
}

// New creates an engine with a drawable surface of the given
// dimensions. It fails with domain.ErrNoSurface when no surface can be
// allocated, since nothing can render without one.
func New(width, height int) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, domain.NewEngineError("new",
			fmt.Sprintf("cannot obtain a %dx%d drawing surface", width, height),
			domain.ErrNoSurface)
	}

	e := &Engine{
		sched: newScheduler(),
		fractal: FractalParams{
			Zoom: 1,
			CRe:  defaultFractalRe,
			CIm:  defaultFractalIm,
		},
	}
	e.initSurface(width, height)
	return e, nil
}

func (e *Engine) initSurface(width, height int) {
	e.width = width
	e.height = height
	e.cx = float64(width) / 2
	e.cy = float64(height) / 2
	e.canvas = newCanvas(width, height)
	e.particles = newParticleField(width, height)
	e.bubbles = newBubblePool()
	e.seeds = newSeedSet(width, height)
}

// Render advances the engine one frame using the given
// frequency-magnitude array and mutates the pixel surface. The slice
// is not retained.
func (e *Engine) Render(freq []byte) {
	audio := e.analyzer.Analyze(freq)

	e.time += timeStep
	e.hueBase = math.Mod(e.hueBase+hueBaseStep+audio.Bass*hueBassStep, 360)
	e.sched.Step(audio.Overall)

	alpha := fadeAlpha
	if e.sched.Current() == PatternSwarm {
		alpha = fadeAlphaSwarm
	}
	e.canvas.Fade(alpha)

	if e.sched.Transitioning() {
		p := e.sched.Progress()
		e.renderPattern(e.sched.Current(), 1-p, audio)
		e.renderPattern(e.sched.Next(), p, audio)
		return
	}
	e.renderPattern(e.sched.Current(), 1, audio)
}

// renderPattern dispatches to the renderer for one pattern tag.
func (e *Engine) renderPattern(p Pattern, alpha float64, audio Features) {
	f := &frame{
		cv:    e.canvas,
		w:     float64(e.width),
		h:     float64(e.height),
		cx:    e.cx,
		cy:    e.cy,
		time:  e.time,
		hue:   e.hueBase,
		alpha: clamp01(alpha),
		audio: audio,
	}

	switch p {
	case PatternFractal:
		e.fractal.Zoom *= 1 + fractalZoomRate*(1+audio.Overall)
		renderFractal(f, e.fractal)
	case PatternRays:
		renderRays(f)
	case PatternTunnel:
		renderTunnel(f)
	case PatternBubbles:
		renderBubbles(f, e.bubbles)
	case PatternVoronoi:
		renderVoronoi(f, e.seeds)
	case PatternWaves:
		renderWaves(f)
	case PatternSwarm:
		renderSwarm(f, e.particles)
	case PatternMandala:
		renderMandala(f)
	case PatternDNA:
		renderDNA(f)
	case PatternPlasma:
		renderPlasma(f)
	}
}

// Resize reallocates the surface and reseeds all entity pools for the
// new area. Scheduler state is preserved; pool state is cosmetic and
// discarded.
func (e *Engine) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.initSurface(width, height)
}

// Image exposes the pixel surface; presentation is the caller's
// responsibility.
func (e *Engine) Image() *image.RGBA {
	return e.canvas.Image()
}

// Size returns the current surface dimensions.
func (e *Engine) Size() (width, height int) {
	return e.width, e.height
}

// Snapshot returns the current introspection state.
func (e *Engine) Snapshot() Status {
	return Status{
		Pattern:            e.sched.Current().String(),
		NextPattern:        e.sched.Next().String(),
		Transitioning:      e.sched.Transitioning(),
		TransitionProgress: e.sched.Progress(),
		PatternDuration:    e.sched.Duration(),
		TransitionSpeed:    e.sched.Speed(),
		HueBase:            e.hueBase,
		Fractal:            e.fractal,
	}
}

// HueBase returns the current hue base in degrees, [0,360).
func (e *Engine) HueBase() float64 { return e.hueBase }

// SetHueBase sets the hue base; any value is accepted and normalized.
func (e *Engine) SetHueBase(deg float64) {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	e.hueBase = h
}

// SetPatternDuration sets the configured frames per pattern.
func (e *Engine) SetPatternDuration(frames int) { e.sched.SetDuration(frames) }

// PatternDuration returns the configured frames per pattern.
func (e *Engine) PatternDuration() int { return e.sched.Duration() }

// SetTransitionSpeed sets the cross-fade progress per frame.
func (e *Engine) SetTransitionSpeed(perFrame float64) { e.sched.SetSpeed(perFrame) }

// TransitionSpeed returns the configured cross-fade speed.
func (e *Engine) TransitionSpeed() float64 { return e.sched.Speed() }

// SetFractalZoom sets the Julia zoom. Out-of-typical-range values,
// including negative ones, are accepted and only degrade the visual.
func (e *Engine) SetFractalZoom(zoom float64) { e.fractal.Zoom = zoom }

// SetFractalOffset sets the Julia plane offset.
func (e *Engine) SetFractalOffset(x, y float64) {
	e.fractal.OffsetX = x
	e.fractal.OffsetY = y
}

// SetFractalConstant sets the Julia complex constant.
func (e *Engine) SetFractalConstant(re, im float64) {
	e.fractal.CRe = re
	e.fractal.CIm = im
}

// Fractal returns the current Julia parameters.
func (e *Engine) Fractal() FractalParams { return e.fractal }

// frame carries the shared per-frame state handed to pattern
// renderers, so each renderer stays a pure mutation of the surface and
// can be tested with synthetic context values.
type frame struct {
	cv     *Canvas
	w, h   float64
	cx, cy float64
	time   float64
	hue    float64
	alpha  float64 // cross-fade alpha for this renderer's pass
	audio  Features
}

// minDim returns the smaller surface dimension.
func (f *frame) minDim() float64 {
	return math.Min(f.w, f.h)
}
