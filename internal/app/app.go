// Package app provides application-level orchestration and dependency injection.
// This package wires together all components and manages the application lifecycle.
package app

import (
	"fmt"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/vibescope/vibescope/internal/adapter/eventbus"
	"github.com/vibescope/vibescope/internal/adapter/source/synthetic"
	fyneui "github.com/vibescope/vibescope/internal/adapter/ui/fyne"
	"github.com/vibescope/vibescope/internal/domain"
	"github.com/vibescope/vibescope/internal/engine"
	"github.com/vibescope/vibescope/internal/logger"
	"github.com/vibescope/vibescope/internal/ports"
)

// Surface dimensions handed to the engine at startup. The raster
// resizes the engine to the real window size on the first paint.
const (
	initialWidth  = 960
	initialHeight = 600
)

// Application is the root application structure that holds all dependencies.
// It follows the Dependency Injection pattern with constructor-based injection.
type Application struct {
	logger  *slog.Logger
	fyneApp fyne.App

	eventBus ports.EventBus
	source   ports.SpectrumSource
	engine   *engine.Engine

	presenter  *fyneui.Presenter
	mainWindow *fyneui.MainWindow

	shutdownOnce sync.Once
}

// Config holds application configuration.
type Config struct {
	// AppID is the unique application identifier
	AppID string

	// AppName is the display name
	AppName string

	// Bins is the number of frequency bins served per frame
	Bins int

	// FPS is the animation tick rate
	FPS int

	// PatternDuration is the steady-state pattern lifetime in frames
	// (0 keeps the engine default)
	PatternDuration int

	// TransitionSpeed is the cross-fade progress per frame
	// (0 keeps the engine default)
	TransitionSpeed float64

	// LogLevel controls logging verbosity
	LogLevel slog.Level

	// TestFyneApp allows injecting a test Fyne app for testing (nil for production)
	TestFyneApp fyne.App
}

// DefaultConfig returns the default application configuration.
func DefaultConfig() Config {
	loggerCfg := logger.DefaultConfig()
	return Config{
		AppID:    "com.vibescope.app",
		AppName:  "Vibescope",
		Bins:     synthetic.DefaultBins,
		FPS:      30,
		LogLevel: loggerCfg.Level,
	}
}

// NewApplication creates a new application with all dependencies wired.
// This is the main dependency injection function.
func NewApplication(config Config) (*Application, error) {
	app := &Application{}

	if config.TestFyneApp != nil {
		app.fyneApp = config.TestFyneApp
	} else {
		app.fyneApp = fyneapp.NewWithID(config.AppID)
	}

	loggerCfg := logger.Config{
		Level:  config.LogLevel,
		Format: "text",
	}
	app.logger = logger.NewLogger(loggerCfg)
	app.logger.Info("initializing application",
		slog.String("app_id", config.AppID),
		slog.String("app_name", config.AppName))

	syncBus := eventbus.NewSyncEventBus()
	syncBus.SetLogger(app.logger.With(slog.String("component", "eventbus")))
	app.eventBus = syncBus

	gen := synthetic.New(config.Bins, config.FPS)
	gen.SetLogger(app.logger.With(slog.String("source", "synthetic")))
	app.source = gen

	eng, err := engine.New(initialWidth, initialHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create visual engine: %w", err)
	}
	if config.PatternDuration > 0 {
		eng.SetPatternDuration(config.PatternDuration)
	}
	if config.TransitionSpeed > 0 {
		eng.SetTransitionSpeed(config.TransitionSpeed)
	}
	app.engine = eng

	app.mainWindow = fyneui.NewMainWindow(app.fyneApp, app.engine)

	app.presenter = fyneui.NewPresenter(
		app.logger.With(slog.String("component", "presenter")),
		app.source,
		app.eventBus,
		app.mainWindow,
		config.FPS,
	)

	app.mainWindow.SetOnClose(func() {
		app.presenter.Stop()
	})

	app.subscribeLifecycleLogs()

	return app, nil
}

// subscribeLifecycleLogs mirrors pattern lifecycle events into the log.
func (a *Application) subscribeLifecycleLogs() {
	log := a.logger.With(slog.String("component", "lifecycle"))

	a.eventBus.Subscribe(domain.EventPatternChanged, func(evt domain.Event) {
		if e, ok := evt.(domain.PatternChangedEvent); ok {
			log.Info("pattern changed",
				slog.String("pattern", e.Pattern),
				slog.String("previous", e.Previous))
		}
	})

	a.eventBus.Subscribe(domain.EventSourceStopped, func(evt domain.Event) {
		if e, ok := evt.(domain.SourceStoppedEvent); ok {
			log.Warn("spectrum source stopped", slog.String("reason", e.Reason))
		}
	})
}

// Run starts the presenter and the UI. Blocks until the window closes.
func (a *Application) Run() {
	a.logger.Info("Vibescope started")

	a.presenter.Start()
	a.mainWindow.ShowAndRun()
}

// Shutdown gracefully shuts down the application. Safe to call more
// than once.
func (a *Application) Shutdown() error {
	var err error
	a.shutdownOnce.Do(func() {
		a.logger.Info("shutting down application")

		a.presenter.Stop()

		if cerr := a.source.Close(); cerr != nil {
			a.logger.Warn("failed to close spectrum source", slog.Any("error", cerr))
			err = cerr
		}

		if cerr := a.eventBus.Close(); cerr != nil {
			a.logger.Warn("failed to close event bus", slog.Any("error", cerr))
			err = cerr
		}

		a.logger.Info("application shutdown complete")
	})
	return err
}

// Engine exposes the visual engine for parameter tuning.
func (a *Application) Engine() *engine.Engine {
	return a.engine
}

// EventBus exposes the event bus, mainly for tests.
func (a *Application) EventBus() ports.EventBus {
	return a.eventBus
}

// FyneApp exposes the underlying Fyne application, mainly for tests.
func (a *Application) FyneApp() fyne.App {
	return a.fyneApp
}
