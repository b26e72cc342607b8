// Package gamemode defines the handler boundary between the hook/settings
// core and concrete game modes.
//
// A concrete mode embeds *Base, which owns exactly one hook registry and one
// settings controller, and implements the lifecycle contract itself. Base is
// bound to the concrete handler at construction so that hook callbacks receive
// the concrete handler and SetSettings replays through its ChangeSetting:
//
//	type Mode struct {
//		*gamemode.Base
//		roundsToWin int
//	}
//
//	func New(id string, resolve gamemode.Resolver) *Mode {
//		m := &Mode{}
//		m.Base = gamemode.NewBase(m, id, resolve)
//		return m
//	}
//
//	func (m *Mode) ChangeSetting(name string, value cty.Value) {
//		m.Base.ChangeSetting(name, value)
//		// update cached state derived from name
//	}
//
// The live mode instance inside the host engine is never stored. The handler
// keeps only its id and resolves the instance on demand through an injected
// Resolver.
package gamemode
