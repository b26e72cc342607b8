package deathmatch

import (
	"github.com/specialistvlad/modehooks/internal/gamemode"
	"github.com/specialistvlad/modehooks/internal/registry"
	"github.com/specialistvlad/modehooks/internal/settings"
)

// Type is the mode type used in mode files.
const Type = "deathmatch"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the deathmatch factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterMode(Type, func(id string, resolve gamemode.Resolver) gamemode.Handler {
		return New(id, resolve)
	})
}

// DefaultSettings is the collection a fresh handler starts with.
func DefaultSettings() *settings.Collection {
	return settings.MustNew(
		settings.MustOf(gamemode.SettingAllowTeams, true),
		settings.MustOf(gamemode.SettingPlayersRequiredToStartGame, 2),
		settings.MustOf(gamemode.SettingRoundsToWinGame, 5),
		settings.MustOf(gamemode.SettingPointsToWinRound, 2),
	)
}
