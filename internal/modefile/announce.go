package modefile

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/modehooks/internal/coroutine"
	"github.com/specialistvlad/modehooks/internal/gamemode"
	"github.com/specialistvlad/modehooks/internal/hook"
)

// Announcement is the hook built from an "on" block. It prints its message,
// then keeps the hook chain parked for WaitSteps steps.
type Announcement struct {
	Key       string
	Message   string
	WaitSteps int

	out    io.Writer
	logger *slog.Logger
}

// Invoke implements hook.Callback.
func (a *Announcement) Invoke(h gamemode.Handler) hook.Routine {
	return func(yield func(hook.Yield) bool) {
		a.logger.Info("Hook announcement.", "mode", h.Name(), "id", h.GameModeID(), "hook", a.Key, "message", a.Message)
		if a.out != nil && a.Message != "" {
			fmt.Fprintf(a.out, "[%s] %s: %s\n", h.GameModeID(), a.Key, a.Message)
		}
		if a.WaitSteps > 0 {
			yield(coroutine.WaitSteps(a.WaitSteps))
		}
	}
}

// Register adds one Announcement per hook definition to h and returns them so
// callers can remove them later.
func (d *Definition) Register(h gamemode.Handler, out io.Writer, logger *slog.Logger) []*Announcement {
	if logger == nil {
		logger = slog.Default()
	}
	added := make([]*Announcement, 0, len(d.Hooks))
	for _, hd := range d.Hooks {
		a := &Announcement{
			Key:       hd.Key,
			Message:   hd.Message,
			WaitSteps: hd.WaitSteps,
			out:       out,
			logger:    logger,
		}
		h.AddHook(hd.Key, a)
		added = append(added, a)
	}
	return added
}
