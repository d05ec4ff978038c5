// Package synthetic provides a SpectrumSource that fabricates
// plausible frequency-magnitude frames without any audio hardware.
// It plays the same role for the visual engine that a mock audio
// engine plays for a player: a demo and test substrate.
package synthetic

import (
	"log/slog"
	"math"
	"math/rand"
	"sync"

	"github.com/charmbracelet/harmonica"
	"gonum.org/v1/gonum/floats"

	"github.com/vibescope/vibescope/internal/domain"
	"github.com/vibescope/vibescope/internal/ports"
)

const (
	// DefaultBins is the frame size handed to the engine each tick.
	DefaultBins = 64

	controlBands   = 8  // spring-animated envelope control points
	retargetEvery  = 30 // frames between random-walk target changes
	beatEvery      = 45 // frames between bass transients
	springFreq     = 4.0
	springDamping  = 0.35
	spectrumSlope  = 0.6 // high-frequency rolloff of the resting profile
	shimmerAmount  = 30.0
)

// Generator produces spectrum frames whose band envelopes chase
// random-walk targets through spring dynamics, with periodic bass
// transients. The result reads like music to the engine's analyzer
// without being any.
//
// Thread-safety: all methods may be called from any goroutine.
type Generator struct {
	logger *slog.Logger

	bins   int
	spring harmonica.Spring

	// Spring state per control band.
	pos     []float64
	vel     []float64
	targets []float64

	frame  int
	closed bool
	mu     sync.Mutex
}

// New creates a generator producing frames of the given bin count at
// the given tick rate. Non-positive arguments fall back to defaults.
// nolint:gosec // G404 - weak random is fine for synthetic audio
func New(bins, fps int) *Generator {
	if bins <= 0 {
		bins = DefaultBins
	}
	if fps <= 0 {
		fps = 30
	}

	g := &Generator{
		bins:    bins,
		spring:  harmonica.NewSpring(harmonica.FPS(fps), springFreq, springDamping),
		pos:     make([]float64, controlBands),
		vel:     make([]float64, controlBands),
		targets: make([]float64, controlBands),
	}
	g.retarget()
	return g
}

// SetLogger sets the logger for this generator.
// This should be called after construction, before producing frames.
func (g *Generator) SetLogger(logger *slog.Logger) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.logger = logger
}

// Bins returns the fixed number of frequency bins per frame.
func (g *Generator) Bins() int {
	return g.bins
}

// Frame fills dst with the next frame's magnitudes.
// nolint:gosec // G404 - weak random is fine for synthetic audio
func (g *Generator) Frame(dst []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return domain.NewSourceError("frame", "synthetic", "generator closed", domain.ErrSourceClosed)
	}
	if len(dst) < g.bins {
		return domain.NewSourceError("frame", "synthetic", "buffer too small", domain.ErrShortFrame)
	}

	g.frame++
	if g.frame%retargetEvery == 0 {
		g.retarget()
	}
	if g.frame%beatEvery == 0 {
		// Bass transient: kick the low control bands hard.
		g.targets[0] = 240
		g.targets[1] = 200
	}

	// Chase targets through the spring, then relax targets toward the
	// resting profile so transients decay.
	for i := range g.pos {
		g.pos[i], g.vel[i] = g.spring.Update(g.pos[i], g.vel[i], g.targets[i])
	}
	floats.Scale(0.985, g.targets)

	// Interpolate control bands across bins and add treble shimmer.
	for i := 0; i < g.bins; i++ {
		t := float64(i) / float64(g.bins-1) * float64(controlBands-1)
		lo := int(t)
		hi := lo + 1
		if hi >= controlBands {
			hi = controlBands - 1
		}
		frac := t - float64(lo)
		v := g.pos[lo]*(1-frac) + g.pos[hi]*frac

		if i >= g.bins/2 {
			v += rand.Float64() * shimmerAmount
		}

		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		dst[i] = byte(v)
	}

	return nil
}

// retarget rolls new random-walk targets shaped by the resting
// profile: loud lows, rolled-off highs.
// nolint:gosec // G404 - weak random is fine for synthetic audio
func (g *Generator) retarget() {
	for i := range g.targets {
		rolloff := math.Pow(1-float64(i)/float64(controlBands), spectrumSlope)
		g.targets[i] = rand.Float64() * 220 * rolloff
	}
}

// Close releases the generator. Subsequent Frame calls fail with
// domain.ErrSourceClosed. Safe to call more than once.
func (g *Generator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.closed && g.logger != nil {
		g.logger.Debug("synthetic source closed", slog.Int("frames", g.frame))
	}
	g.closed = true
	return nil
}

// Verify that Generator implements the SpectrumSource interface
var _ ports.SpectrumSource = (*Generator)(nil)
