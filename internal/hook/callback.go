package hook

// Callback is a unit of behavior registered under a hook key. It receives the
// handler that owns the registry and returns the routine to run.
//
// Implementations must be comparable, because removal finds a callback with
// ==. Pointer types are the norm; use Func or Action to adapt a plain func.
type Callback[H any] interface {
	Invoke(h H) Routine
}

// Func adapts a routine-producing func into a comparable Callback. Each call to
// NewFunc yields a distinct callback identity, even for the same func.
type Func[H any] struct {
	name string
	fn   func(H) Routine
}

// NewFunc wraps fn. The name is only used for diagnostics.
func NewFunc[H any](name string, fn func(H) Routine) *Func[H] {
	return &Func[H]{name: name, fn: fn}
}

// Invoke implements Callback.
func (f *Func[H]) Invoke(h H) Routine {
	if f.fn == nil {
		return Done
	}
	if r := f.fn(h); r != nil {
		return r
	}
	return Done
}

// String returns the diagnostic name.
func (f *Func[H]) String() string {
	return f.name
}

// Action is a callback that runs a plain func and never suspends.
type Action[H any] struct {
	name string
	fn   func(H)
}

// NewAction wraps fn.
func NewAction[H any](name string, fn func(H)) *Action[H] {
	return &Action[H]{name: name, fn: fn}
}

// Invoke implements Callback. The func runs when the routine is first resumed,
// not when Invoke is called.
func (a *Action[H]) Invoke(h H) Routine {
	return func(func(Yield) bool) {
		if a.fn != nil {
			a.fn(h)
		}
	}
}

// String returns the diagnostic name.
func (a *Action[H]) String() string {
	return a.name
}
