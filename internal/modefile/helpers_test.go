package modefile

import "github.com/specialistvlad/modehooks/internal/gamemode"

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
