// Package deathmatch is a last-team-standing game mode: a point goes to the
// surviving team whenever only one player is left alive, and rounds are won
// by reaching pointsToWinRound points.
package deathmatch

import (
	"github.com/specialistvlad/modehooks/internal/gamemode"
	"github.com/specialistvlad/modehooks/internal/settings"
	"github.com/zclconf/go-cty/cty"
)

// Mode is the deathmatch handler.
type Mode struct {
	*gamemode.Base

	// Cached from settings by ChangeSetting.
	roundsToWin     int
	pointsToWin     int
	playersRequired int
	teams           bool

	active  bool
	started bool
	players []gamemode.Player
	scores  map[int]gamemode.TeamScore
}

var _ gamemode.Handler = (*Mode)(nil)

// New creates a handler with DefaultSettings applied.
func New(id string, resolve gamemode.Resolver, opts ...gamemode.Option) *Mode {
	m := &Mode{scores: make(map[int]gamemode.TeamScore)}
	m.Base = gamemode.NewBase(m, id, resolve, opts...)
	m.SetSettings(DefaultSettings())
	return m
}

// Name implements gamemode.Handler.
func (m *Mode) Name() string {
	return "Deathmatch"
}

// ChangeSetting updates the stored collection, then the cached value derived
// from name. Names this mode does not know, and values of the wrong type,
// leave the cache alone. SetSettings only replays the names it is given, so a
// collection that omits one of the four cached names leaves that cache at its
// previous value; overlay partial collections on Settings() to keep the two
// in agreement.
func (m *Mode) ChangeSetting(name string, value cty.Value) {
	m.Base.ChangeSetting(name, value)

	entry := settings.Entry{Name: name, Value: value}
	switch name {
	case gamemode.SettingRoundsToWinGame:
		decodeInto(entry, &m.roundsToWin)
	case gamemode.SettingPointsToWinRound:
		decodeInto(entry, &m.pointsToWin)
	case gamemode.SettingPlayersRequiredToStartGame:
		decodeInto(entry, &m.playersRequired)
	case gamemode.SettingAllowTeams:
		decodeInto(entry, &m.teams)
	}
}

func decodeInto[T any](e settings.Entry, target *T) {
	var v T
	if err := e.Decode(&v); err == nil {
		*target = v
	}
}

// RoundsToWin returns the cached roundsToWinGame.
func (m *Mode) RoundsToWin() int { return m.roundsToWin }

// PointsToWin returns the cached pointsToWinRound.
func (m *Mode) PointsToWin() int { return m.pointsToWin }

// PlayersRequired returns the cached playersRequiredToStartGame.
func (m *Mode) PlayersRequired() int { return m.playersRequired }

// TeamsAllowed returns the cached allowTeams.
func (m *Mode) TeamsAllowed() bool { return m.teams }

// Active reports the value last passed to SetActive.
func (m *Mode) Active() bool { return m.active }

// Started reports whether StartGame ran since the last reset.
func (m *Mode) Started() bool { return m.started }

// Players returns the joined players.
func (m *Mode) Players() []gamemode.Player {
	return append([]gamemode.Player(nil), m.players...)
}

// PlayerJoined implements gamemode.LifecycleOwner. Without teams every
// player is put on a team of their own.
func (m *Mode) PlayerJoined(p gamemode.Player) {
	if !m.teams {
		p.TeamID = p.ID
	}
	m.players = append(m.players, p)
}

// PlayerDied implements gamemode.LifecycleOwner. When exactly one player is
// alive, every other team than the killed player's scores a point.
func (m *Mode) PlayerDied(killed gamemode.Player, playersAlive int) {
	if !m.started || playersAlive != 1 {
		return
	}
	if !m.teams {
		killed.TeamID = killed.ID
	}
	for _, team := range m.teamIDs() {
		if team == killed.TeamID {
			continue
		}
		score := m.scores[team]
		score.Points++
		if m.pointsToWin > 0 && score.Points >= m.pointsToWin {
			score.Points = 0
			score.Rounds++
		}
		m.scores[team] = score
	}
}

func (m *Mode) teamIDs() []int {
	var ids []int
	seen := make(map[int]bool)
	for _, p := range m.players {
		if !seen[p.TeamID] {
			seen[p.TeamID] = true
			ids = append(ids, p.TeamID)
		}
	}
	return ids
}

// Winner returns the team that reached roundsToWinGame, if any.
func (m *Mode) Winner() (int, bool) {
	for _, team := range m.teamIDs() {
		if m.roundsToWin > 0 && m.scores[team].Rounds >= m.roundsToWin {
			return team, true
		}
	}
	return 0, false
}

// GetTeamScore implements gamemode.LifecycleOwner.
func (m *Mode) GetTeamScore(teamID int) gamemode.TeamScore {
	return m.scores[teamID]
}

// SetTeamScore implements gamemode.LifecycleOwner.
func (m *Mode) SetTeamScore(teamID int, score gamemode.TeamScore) {
	m.scores[teamID] = score
}

// SetActive implements gamemode.LifecycleOwner.
func (m *Mode) SetActive(active bool) {
	m.active = active
}

// StartGame implements gamemode.LifecycleOwner. A game only starts once
// enough players have joined.
func (m *Mode) StartGame() {
	if m.started || len(m.players) < m.playersRequired {
		return
	}
	m.started = true
	m.scores = make(map[int]gamemode.TeamScore)
}

// ResetGame implements gamemode.LifecycleOwner.
func (m *Mode) ResetGame() {
	m.started = false
	m.players = nil
	m.scores = make(map[int]gamemode.TeamScore)
}
