// Package main is the production entry point for the Vibescope visualizer.
//
// Vibescope is an audio-reactive visual engine with clean architecture:
// - Event-driven communication (no callbacks)
// - Dependency injection for testability
// - MVP pattern for UI decoupling
//
// Build:
//
//	go build -o build/vibescope ./cmd
//
// Run:
//
//	./build/vibescope
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/integrii/flaggy"

	"github.com/vibescope/vibescope/internal/app"
	"github.com/vibescope/vibescope/internal/logger"
)

const (
	appName = "vibescope"
	appDesc = "audio-reactive procedural visualizer"
)

func main() {
	config := app.DefaultConfig()

	parser := flaggy.NewParser(appName)
	parser.Description = appDesc
	parser.Version = app.GetVersionInfo().FullString()

	logLevel := ""
	parser.Int(&config.PatternDuration, "d", "duration", "pattern lifetime in frames before a cross-fade (0 for default)")
	parser.Float64(&config.TransitionSpeed, "t", "transition-speed", "cross-fade progress per frame (0 for default)")
	parser.Int(&config.FPS, "f", "fps", "animation tick rate")
	parser.Int(&config.Bins, "n", "bins", "frequency bins per spectrum frame")
	parser.String(&logLevel, "l", "log-level", "log verbosity (DEBUG, INFO, WARN, ERROR)")

	if err := parser.Parse(); err != nil {
		log.Fatalf("Failed to parse flags: %v", err)
	}

	if logLevel != "" {
		config.LogLevel = logger.ParseLevel(logLevel)
	}

	application, err := app.NewApplication(config)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Ensure a graceful shutdown
	defer func() {
		fmt.Println("\nShutting down...")
		if err := application.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
		}
		fmt.Println("Shutdown complete")
	}()

	// Run application (blocks until the window closed)
	application.Run()
}
