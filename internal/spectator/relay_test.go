package spectator

import (
	"encoding/json"
	"testing"

	"github.com/specialistvlad/modehooks/internal/ctxlog"
	"github.com/specialistvlad/modehooks/internal/gamemode"
	"github.com/specialistvlad/modehooks/internal/settings"
	"github.com/specialistvlad/modehooks/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emitted struct {
	event   string
	payload any
}

type fakeEmitter struct {
	events []emitted
}

func (f *fakeEmitter) Emit(event string, payload any) {
	f.events = append(f.events, emitted{event, payload})
}

type testHandler struct {
	*gamemode.Base
}

func newTestHandler(id string) *testHandler {
	h := &testHandler{}
	h.Base = gamemode.NewBase(h, id, nil)
	return h
}

func (h *testHandler) Name() string { return "test" }
func (h *testHandler) PlayerJoined(gamemode.Player) {}
func (h *testHandler) PlayerDied(gamemode.Player, int) {}
func (h *testHandler) GetTeamScore(int) gamemode.TeamScore { return gamemode.TeamScore{} }
func (h *testHandler) SetTeamScore(int, gamemode.TeamScore) {}
func (h *testHandler) SetActive(bool) {}
func (h *testHandler) StartGame() {}
func (h *testHandler) ResetGame() {}

func TestRelay_EmitsOnTrigger(t *testing.T) {
	ctx := testutil.Context(t)
	h := newTestHandler("arena")
	h.SetSettings(settings.MustNew(settings.MustOf(gamemode.SettingRoundsToWinGame, 3)))

	em := &fakeEmitter{}
	relays := Attach(h, em, ctxlog.FromContext(ctx), gamemode.HookGameStart, gamemode.HookGameEnd)
	require.Len(t, relays, 2)

	for range h.TriggerHook("gamestart") {
		t.Fatal("relay must not suspend")
	}

	require.Len(t, em.events, 1)
	assert.Equal(t, EventName, em.events[0].event)
	payload, ok := em.events[0].payload.(Payload)
	require.True(t, ok)
	assert.Equal(t, "test", payload.Mode)
	assert.Equal(t, "arena", payload.ID)
	assert.Equal(t, gamemode.HookGameStart, payload.Hook)

	var decoded settings.Collection
	require.NoError(t, json.Unmarshal(payload.Settings, &decoded))
	assert.True(t, decoded.Equal(h.Settings()))
}

func TestRelay_Detach(t *testing.T) {
	h := newTestHandler("arena")
	em := &fakeEmitter{}
	relays := Attach(h, em, nil, gamemode.HookRoundEnd)

	require.NoError(t, h.RemoveHook(gamemode.HookRoundEnd, relays[0]))
	for range h.TriggerHook(gamemode.HookRoundEnd) {
	}
	assert.Empty(t, em.events)
}
