package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/specialistvlad/modehooks/internal/ctxlog"
	"github.com/specialistvlad/modehooks/internal/gamemode"
	"github.com/specialistvlad/modehooks/internal/modefile"
	"github.com/specialistvlad/modehooks/internal/registry"
	"github.com/specialistvlad/modehooks/internal/spectator"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	ctx        context.Context
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	registry   *registry.Registry
	loader     *modefile.Loader
	handlers   []gamemode.Handler
	types      map[string]string // mode id -> registry type
	loaded     atomic.Int64 // len(handlers), read by the health check
	spectator  *spectator.Client
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger and a registry holding the given modules, or the
// core modules when none are given.
func NewApp(outW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.New(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules), "modes", reg.Modes())

	return &App{
		ctx:      ctx,
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		loader:   modefile.NewLoader(),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (app *App) Registry() *registry.Registry {
	return app.registry
}

// Handlers returns the handlers built by Load, in definition order.
func (app *App) Handlers() []gamemode.Handler {
	return app.handlers
}
