package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/attrbridge/internal/builtin"
	"github.com/vk/attrbridge/internal/ctxlog"
	"github.com/vk/attrbridge/internal/manifest"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	errW     io.Writer
	logger   *slog.Logger
	registry *builtin.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and the
// compiled-in builtin registry. Building the registry validates every
// declared signature against the Go interface; a drift there is a
// programmer error and panics before anything else runs.
func NewApp(outW, errW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	reg := builtin.ContextBuiltins()
	logger.Debug("Builtin registry constructed.", "entries", reg.Len())

	return &App{
		outW:     outW,
		errW:     errW,
		logger:   logger,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *builtin.Registry {
	return a.registry
}

// Run loads the builtin manifests, verifies them against the compiled-in
// registry, and prints the verified table. A verification failure is the
// signature-mismatch error class: the process reports it and exits
// non-zero instead of letting a stale manifest mislead script authors.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	objects, err := manifest.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load builtin manifests: %w", err)
	}

	if err := manifest.Verify(ctx, objects, a.registry); err != nil {
		return fmt.Errorf("manifest verification failed: %w", err)
	}
	a.logger.Info("Builtin manifests verified against registry.", "entries", a.registry.Len())

	for _, e := range a.registry.All() {
		fmt.Fprintln(a.outW, e.Signature())
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
