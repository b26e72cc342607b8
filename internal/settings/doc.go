// Package settings holds a game mode's ordered key-value configuration and
// the copy-on-write protocol used to change it.
//
// Values are cty.Value, so a setting can be a number, bool, string, a
// collection of those, or a capsule wrapping a Go reference. The mutation
// algorithm copies values without interpreting them.
//
// A Collection is never edited in place. SetSettings installs a whole new
// collection; ChangeSetting rebuilds the current one with a single value
// substituted. Either way observers see the old collection discarded and the
// new one installed.
package settings
