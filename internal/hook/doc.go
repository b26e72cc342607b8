// Package hook provides the named extension-point registry used by game mode
// handlers.
//
// A hook key is case-insensitive: "GameStart", "gamestart" and "GAMESTART"
// all address the same ordered list of callbacks. Triggering a key produces a
// Routine, a cooperatively scheduled sequence of suspension points. The
// callbacks run strictly one after another in registration order; a callback
// that suspends holds up every callback registered after it until its own
// routine is exhausted.
//
// A Registry is owned by a single handler and is not safe for concurrent use.
// All mutation and dispatch must happen on the goroutine that drives the
// handler's lifecycle.
package hook
