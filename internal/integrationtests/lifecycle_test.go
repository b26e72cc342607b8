package integrationtests

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/modehooks/internal/gamemode"
	"github.com/specialistvlad/modehooks/internal/registry"
	"github.com/specialistvlad/modehooks/modules/deathmatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// practiceModule registers a deathmatch variant whose Go hook raises
// roundsToWinGame when a round ends.
type practiceModule struct {
	seen []string
}

func (p *practiceModule) Register(r *registry.Registry) {
	r.RegisterMode("practice", func(id string, resolve gamemode.Resolver) gamemode.Handler {
		m := deathmatch.New(id, resolve)
		m.AddHook(gamemode.HookRoundEnd, gamemode.NewAction("extend", func(h gamemode.Handler) {
			inst, err := h.GameMode()
			if err == nil {
				p.seen = append(p.seen, inst.ID())
			}
			h.ChangeSetting(gamemode.SettingRoundsToWinGame, cty.NumberIntVal(9))
		}))
		return m
	})
}

func TestLifecycle_ModesInterleaveByStep(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"a_arena.hcl": `
mode "deathmatch" "arena" {
  on "GameStart" {
    message    = "Fight!"
    wait_steps = 2
  }
  on "GameEnd" {
    message = "GG"
  }
}
`,
		"b_duel.hcl": `
mode "deathmatch" "duel" {
  on "GameStart" {
    message = "Duel!"
  }
  on "GameEnd" {
    message = "Over"
  }
}
`,
	}

	// --- Act ---
	result := runIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)

	// The duel never suspends, so it finishes while the arena is parked.
	want := []string{
		"[arena] GameStart: Fight!",
		"[duel] GameStart: Duel!",
		"[duel] GameEnd: Over",
		"[arena] GameEnd: GG",
	}
	if diff := cmp.Diff(want, result.Announcements); diff != "" {
		t.Errorf("announcement order mismatch (-want +got):\n%s", diff)
	}
}

func TestLifecycle_DefaultsSurviveWithoutSettingsBlock(t *testing.T) {
	result := runIntegrationTest(t, map[string]string{
		"arena.hcl": `mode "deathmatch" "arena" {}`,
	})

	require.NoError(t, result.Err)
	want := []setting{
		{Name: gamemode.SettingAllowTeams, Value: true},
		{Name: gamemode.SettingPlayersRequiredToStartGame, Value: float64(2)},
		{Name: gamemode.SettingRoundsToWinGame, Value: float64(5)},
		{Name: gamemode.SettingPointsToWinRound, Value: float64(2)},
	}
	if diff := cmp.Diff(want, result.Settings["arena"]); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLifecycle_GoHookChangesSetting(t *testing.T) {
	// --- Arrange ---
	practice := &practiceModule{}
	files := map[string]string{
		"practice.hcl": `
mode "practice" "warmup" {
  settings {
    roundsToWinGame = 1
    map             = "yard"
  }
}
`,
	}

	// --- Act ---
	result := runIntegrationTest(t, files, &deathmatch.Module{}, practice)

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, []string{"warmup"}, practice.seen, "hook should resolve the live instance")

	want := []setting{
		{Name: gamemode.SettingAllowTeams, Value: true},
		{Name: gamemode.SettingPlayersRequiredToStartGame, Value: float64(2)},
		{Name: gamemode.SettingRoundsToWinGame, Value: float64(9)},
		{Name: gamemode.SettingPointsToWinRound, Value: float64(2)},
		{Name: "map", Value: "yard"},
	}
	if diff := cmp.Diff(want, result.Settings["warmup"]); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, result.App.Handlers(), 1)
	mode, ok := result.App.Handlers()[0].(*deathmatch.Mode)
	require.True(t, ok)
	assert.Equal(t, 9, mode.RoundsToWin(), "the override should refresh the cached value")
}

func TestLifecycle_DuplicateModeIDsRejected(t *testing.T) {
	result := runIntegrationTest(t, map[string]string{
		"a.hcl": `mode "deathmatch" "arena" {}`,
		"b.hcl": `mode "deathmatch" "arena" {}`,
	})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "arena")
	assert.Empty(t, result.Settings)
}
