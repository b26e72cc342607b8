// Package spectator relays hook triggers to a socket.io server so that an
// external feed can follow a game mode's lifecycle.
package spectator

import (
	"encoding/json"
	"log/slog"

	"github.com/specialistvlad/modehooks/internal/gamemode"
	"github.com/specialistvlad/modehooks/internal/hook"
)

// EventName is the socket.io event every relayed hook is emitted as.
const EventName = "hook"

// Emitter sends an event with a single payload.
type Emitter interface {
	Emit(event string, payload any)
}

// Payload is the body of a relayed hook event.
type Payload struct {
	Mode     string          `json:"mode"`
	ID       string          `json:"id"`
	Hook     string          `json:"hook"`
	Settings json.RawMessage `json:"settings,omitempty"`
}

// Relay is a hook callback that emits one event per trigger. It never
// suspends.
type Relay struct {
	key     string
	emitter Emitter
	logger  *slog.Logger
}

// NewRelay creates a relay for the given key.
func NewRelay(key string, emitter Emitter, logger *slog.Logger) *Relay {
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{key: key, emitter: emitter, logger: logger}
}

// Invoke implements hook.Callback.
func (r *Relay) Invoke(h gamemode.Handler) hook.Routine {
	return func(func(hook.Yield) bool) {
		payload := Payload{Mode: h.Name(), ID: h.GameModeID(), Hook: r.key}
		if raw, err := json.Marshal(h.Settings()); err == nil {
			payload.Settings = raw
		} else {
			r.logger.Warn("Failed to encode settings for spectators.", "id", payload.ID, "error", err)
		}
		r.logger.Debug("Relaying hook to spectators.", "id", payload.ID, "hook", r.key)
		r.emitter.Emit(EventName, payload)
	}
}

// Attach registers a relay on h for every key and returns the relays.
func Attach(h gamemode.Handler, emitter Emitter, logger *slog.Logger, keys ...string) []*Relay {
	relays := make([]*Relay, 0, len(keys))
	for _, key := range keys {
		r := NewRelay(key, emitter, logger)
		h.AddHook(key, r)
		relays = append(relays, r)
	}
	return relays
}
