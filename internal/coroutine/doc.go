// Package coroutine hosts hook routines the way a game loop hosts coroutines.
//
// A Scheduler owns a set of live routines and advances each of them by one
// suspension point per Step. It runs entirely on the caller's goroutine and
// takes no locks; the only concurrency involved is the goroutine switching
// performed by iter.Pull.
//
// Directives yielded by a routine:
//
//   - nil (or any value not listed here): resume on the next step.
//   - WaitSteps(n): stay parked for n steps.
//   - a hook.Routine, or a plain func(func(hook.Yield) bool): run the nested
//     routine to completion, then resume the parent.
package coroutine
