package fyne

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vibescope/vibescope/internal/domain"
	"github.com/vibescope/vibescope/internal/engine"
	"github.com/vibescope/vibescope/internal/ports"
)

// View is what the presenter drives. MainWindow implements it; tests
// substitute their own.
type View interface {
	// UpdateSpectrum pushes one frequency-magnitude frame for the next
	// paint.
	UpdateSpectrum(data []byte)

	// Snapshot returns the engine's current introspection state.
	Snapshot() engine.Status

	// SetPatternName reflects the active pattern name in the UI.
	SetPatternName(name string)
}

// Presenter owns the animation tick: each tick it pulls a spectrum
// frame from the source, pushes it to the view, and diffs engine
// snapshots to publish pattern lifecycle events on the bus.
//
// Thread-safety: Start and Stop may be called from any goroutine;
// Stop is idempotent and joins the tick goroutine.
type Presenter struct {
	logger *slog.Logger

	source ports.SpectrumSource
	bus    ports.EventBus
	view   View

	interval time.Duration
	frame    []byte

	stopChan chan struct{}
	done     chan struct{}

	started   atomic.Bool
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewPresenter creates a presenter ticking at the given rate.
func NewPresenter(logger *slog.Logger, source ports.SpectrumSource, bus ports.EventBus, view View, fps int) *Presenter {
	if fps <= 0 {
		fps = 30
	}
	return &Presenter{
		logger:   logger,
		source:   source,
		bus:      bus,
		view:     view,
		interval: time.Second / time.Duration(fps),
		frame:    make([]byte, source.Bins()),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the tick loop. Subsequent calls are a no-op.
func (p *Presenter) Start() {
	p.startOnce.Do(func() {
		p.view.SetPatternName(p.view.Snapshot().Pattern)
		p.started.Store(true)
		go p.run()
	})
}

// Stop halts the tick loop and waits for it to finish. Safe to call
// more than once, and without a prior Start.
func (p *Presenter) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
	})
	if p.started.Load() {
		<-p.done
	}
}

func (p *Presenter) run() {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	last := p.view.Snapshot()

	for {
		select {
		case <-ticker.C:
			if err := p.source.Frame(p.frame); err != nil {
				p.logger.Error("spectrum source failed", slog.Any("error", err))
				p.bus.Publish(domain.NewSourceStoppedEvent(err.Error()))
				return
			}

			p.view.UpdateSpectrum(p.frame)
			last = p.publishChanges(last, p.view.Snapshot())

		case <-p.stopChan:
			return
		}
	}
}

// publishChanges diffs two snapshots and emits lifecycle events.
func (p *Presenter) publishChanges(last, cur engine.Status) engine.Status {
	switch {
	case !last.Transitioning && cur.Transitioning:
		p.bus.Publish(domain.NewTransitionStartedEvent(cur.Pattern, cur.NextPattern))

	case last.Transitioning && !cur.Transitioning:
		p.bus.Publish(domain.NewTransitionCompletedEvent(cur.Pattern))
		p.bus.Publish(domain.NewPatternChangedEvent(cur.Pattern, last.Pattern))
		p.view.SetPatternName(cur.Pattern)
	}
	return cur
}
