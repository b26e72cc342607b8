package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/specialistvlad/modehooks/internal/coroutine"
	"github.com/specialistvlad/modehooks/internal/ctxlog"
	"github.com/specialistvlad/modehooks/internal/gamemode"
	"github.com/specialistvlad/modehooks/internal/hook"
)

// Run loads the modes, plays one full lifecycle per handler and prints each
// handler's final settings as JSON.
func (app *App) Run(ctx context.Context) error {
	app.ctx = ctxlog.WithLogger(ctx, app.logger)
	logger := app.logger
	logger.Debug("App.Run method started.")

	app.healthCheckServer()
	defer app.closeHealthCheckServer()
	defer app.closeSpectator()

	if err := app.Load(ctx); err != nil {
		return err
	}
	if len(app.handlers) == 0 {
		logger.Warn("No handlers loaded, nothing to run.")
		return nil
	}

	sched := coroutine.New()
	for _, h := range app.handlers {
		sched.Start(h.GameModeID(), lifecycle(h))
	}

	logger.Info("🚀 Starting game mode lifecycles...", "handlers", len(app.handlers))
	steps, err := sched.Run(app.ctx, app.config.TickInterval)
	if err != nil {
		return fmt.Errorf("lifecycle interrupted after %d steps: %w", steps, err)
	}
	logger.Info("🏁 Lifecycles finished.", "steps", steps)

	return app.printSettings()
}

// lifecycle activates and starts the mode, then fires the standard hooks in
// order, finishing each before the next.
func lifecycle(h gamemode.Handler) hook.Routine {
	return func(yield func(hook.Yield) bool) {
		h.SetActive(true)
		h.StartGame()
		for _, key := range gamemode.LifecycleOrder {
			for y := range h.TriggerHook(key) {
				if !yield(y) {
					return
				}
			}
		}
		h.SetActive(false)
	}
}

// settingsLine is the JSON line printed per handler at the end of a run. Mode
// is the handler's display name, as in spectator.Payload; Type is the
// registry type it was built from.
type settingsLine struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Mode     string `json:"mode"`
	Settings any    `json:"settings"`
}

func (app *App) printSettings() error {
	for _, h := range app.handlers {
		data, err := json.Marshal(settingsLine{
			ID:       h.GameModeID(),
			Type:     app.types[h.GameModeID()],
			Mode:     h.Name(),
			Settings: h.Settings(),
		})
		if err != nil {
			return fmt.Errorf("failed to encode settings of '%s': %w", h.GameModeID(), err)
		}
		if _, err := fmt.Fprintln(app.outW, string(data)); err != nil {
			return err
		}
	}
	return nil
}

func (app *App) closeSpectator() {
	if app.spectator == nil {
		return
	}
	if err := app.spectator.Close(); err != nil && !errors.Is(err, context.Canceled) {
		app.logger.Warn("Failed to close spectator feed.", "error", err)
	}
	app.spectator = nil
}
