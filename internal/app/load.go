package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/modehooks/internal/ctxlog"
	"github.com/specialistvlad/modehooks/internal/gamemode"
	"github.com/specialistvlad/modehooks/internal/settings"
	"github.com/specialistvlad/modehooks/internal/spectator"
)

// instance is the live object registered for every loaded mode. The host
// engine's own instance would take its place when embedded in a game.
type instance struct {
	id       string
	modeType string
}

func (i *instance) ID() string { return i.id }

// Type returns the mode type the instance was loaded as.
func (i *instance) Type() string { return i.modeType }

// Load reads the mode files, builds a handler per definition, applies its
// settings and registers its hooks. Handlers from a previous Load are
// discarded.
func (app *App) Load(ctx context.Context) error {
	app.ctx = ctxlog.WithLogger(ctx, app.logger)
	logger := app.logger
	logger.Debug("Loading modes...", "modes_path", app.config.ModesPath)

	app.handlers = nil
	app.types = make(map[string]string)
	app.loaded.Store(0)
	defs, err := app.loader.Load(app.ctx, app.config.ModesPath)
	if err != nil {
		return fmt.Errorf("failed to load modes: %w", err)
	}
	if len(defs) == 0 {
		logger.Warn("No game modes defined.", "path", app.config.ModesPath)
		return nil
	}

	if app.config.SpectatorURL != "" && app.spectator == nil {
		client, err := spectator.Dial(app.ctx, spectator.Options{
			URL:                app.config.SpectatorURL,
			Namespace:          app.config.SpectatorNamespace,
			InsecureSkipVerify: app.config.SpectatorInsecure,
		})
		if err != nil {
			return fmt.Errorf("failed to connect spectator feed: %w", err)
		}
		app.spectator = client
	}

	for _, def := range defs {
		h, err := app.registry.NewHandler(def.Type, def.ID)
		if err != nil {
			return fmt.Errorf("mode '%s' in %s: %w", def.ID, def.File, err)
		}
		app.registry.RegisterInstance(&instance{id: def.ID, modeType: def.Type})

		// File settings override the handler's defaults; names the file
		// leaves out keep their default entry.
		if def.Settings.Len() > 0 {
			h.SetSettings(settings.Overlay(h.Settings(), def.Settings))
		}
		def.Register(h, app.outW, logger.With("id", def.ID))
		if app.spectator != nil {
			spectator.Attach(h, app.spectator, logger.With("id", def.ID), gamemode.LifecycleOrder...)
		}

		logger.Info("Game mode loaded.", "type", def.Type, "id", def.ID, "settings", def.Settings.Names(), "hooks", len(def.Hooks))
		app.handlers = append(app.handlers, h)
		app.types[def.ID] = def.Type
		app.loaded.Store(int64(len(app.handlers)))
	}
	return nil
}
