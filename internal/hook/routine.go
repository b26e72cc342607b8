package hook

import "iter"

// Yield is a single suspension point produced by a running routine. The value
// is an opaque directive for whatever drives the routine; nil means "resume
// me on the next step".
type Yield any

// Routine is a resumable operation. Every value it produces is a point at which
// it hands control back to its driver.
type Routine = iter.Seq[Yield]

// Done is a routine that completes without ever suspending.
func Done(func(Yield) bool) {}

// Sequence concatenates routines. Each routine is drained before the next one
// starts, and the whole sequence stops as soon as the consumer does.
func Sequence(routines ...Routine) Routine {
	return func(yield func(Yield) bool) {
		for _, r := range routines {
			if r == nil {
				continue
			}
			for y := range r {
				if !yield(y) {
					return
				}
			}
		}
	}
}

// Suspend returns a routine that suspends n times with a nil directive.
func Suspend(n int) Routine {
	return func(yield func(Yield) bool) {
		for i := 0; i < n; i++ {
			if !yield(nil) {
				return
			}
		}
	}
}
