package gamemode

// Standard hook keys fired by the mode lifecycle.
const (
	HookInitStart       = "InitStart"
	HookInitEnd         = "InitEnd"
	HookGameStart       = "GameStart"
	HookGameEnd         = "GameEnd"
	HookRoundStart      = "RoundStart"
	HookRoundEnd        = "RoundEnd"
	HookPointStart      = "PointStart"
	HookPointEnd        = "PointEnd"
	HookBattleStart     = "BattleStart"
	HookPickStart       = "PickStart"
	HookPickEnd         = "PickEnd"
	HookPlayerPickStart = "PlayerPickStart"
	HookPlayerPickEnd   = "PlayerPickEnd"
)

// Standard setting names.
const (
	SettingRoundsToWinGame            = "roundsToWinGame"
	SettingPointsToWinRound           = "pointsToWinRound"
	SettingPlayersRequiredToStartGame = "playersRequiredToStartGame"
	SettingAllowTeams                 = "allowTeams"
)

// LifecycleOrder is the order in which a full game fires the standard hooks.
var LifecycleOrder = []string{
	HookInitStart,
	HookInitEnd,
	HookGameStart,
	HookRoundStart,
	HookPointStart,
	HookBattleStart,
	HookPointEnd,
	HookRoundEnd,
	HookGameEnd,
}
