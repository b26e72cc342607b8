package gamemode

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/modehooks/internal/hook"
	"github.com/specialistvlad/modehooks/internal/settings"
	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrResolverRequired indicates a handler built without a Resolver.
	ErrResolverRequired = errors.New("game mode resolver is required")
	// ErrInstanceType indicates the resolved instance has an unexpected type.
	ErrInstanceType = errors.New("game mode instance has unexpected type")
)

// Instance is the live game mode object owned by the host engine.
type Instance interface {
	ID() string
}

// Resolver looks up a live instance by id.
type Resolver func(id string) (Instance, error)

// Player identifies a participant.
type Player struct {
	ID     int
	TeamID int
	Name   string
}

// TeamScore is a team's standing.
type TeamScore struct {
	Points int
	Rounds int
}

// SettingsOwner is the settings half of the handler contract.
type SettingsOwner interface {
	Settings() *settings.Collection
	SetSettings(*settings.Collection)
	ChangeSetting(name string, value cty.Value)
}

// LifecycleOwner is implemented by every concrete mode. The hook/settings
// core never calls these; they exist for the mode-lifecycle layer.
type LifecycleOwner interface {
	PlayerJoined(p Player)
	PlayerDied(killed Player, playersAlive int)
	GetTeamScore(teamID int) TeamScore
	SetTeamScore(teamID int, score TeamScore)
	SetActive(active bool)
	StartGame()
	ResetGame()
}

// Hook is a callback registered on a handler.
type Hook = hook.Callback[Handler]

// Handler is the polymorphic handle callbacks receive.
type Handler interface {
	SettingsOwner
	LifecycleOwner

	Name() string
	GameModeID() string
	GameMode() (Instance, error)

	AddHook(key string, cb Hook)
	RemoveHook(key string, cb Hook) error
	TriggerHook(key string) hook.Routine
}

// NewHook adapts a routine-producing func into a Hook.
func NewHook(name string, fn func(Handler) hook.Routine) Hook {
	return hook.NewFunc(name, fn)
}

// NewAction adapts a func that never suspends into a Hook.
func NewAction(name string, fn func(Handler)) Hook {
	return hook.NewAction(name, fn)
}

// Typed resolves h's live instance and asserts it to T.
func Typed[T Instance](h Handler) (T, error) {
	var zero T
	inst, err := h.GameMode()
	if err != nil {
		return zero, err
	}
	typed, ok := inst.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T, want %T", ErrInstanceType, h.GameModeID(), inst, zero)
	}
	return typed, nil
}
