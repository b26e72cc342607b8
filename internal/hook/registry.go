package hook

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"
)

// ErrHookNotRegistered is returned when removing from a key that never had a
// callback registered.
var ErrHookNotRegistered = errors.New("hook key is not registered")

// Registry maps case-normalized keys to ordered callback lists.
type Registry[H any] struct {
	hooks map[string][]Callback[H]
}

// NewRegistry creates an empty registry.
func NewRegistry[H any]() *Registry[H] {
	return &Registry[H]{hooks: make(map[string][]Callback[H])}
}

// Normalize returns the canonical form of a hook key.
func Normalize(key string) string {
	return strings.ToLower(key)
}

// AddHook appends cb to the callbacks of key. A nil callback is ignored.
// Registering the same callback twice makes it run twice.
func (r *Registry[H]) AddHook(key string, cb Callback[H]) {
	if isNil(cb) {
		return
	}
	if t := reflect.TypeOf(cb); !t.Comparable() {
		panic(fmt.Sprintf("hook callback of type %s for key '%s' is not comparable", t, key))
	}
	if r.hooks == nil {
		r.hooks = make(map[string][]Callback[H])
	}
	key = Normalize(key)
	r.hooks[key] = append(r.hooks[key], cb)
}

// RemoveHook removes the first occurrence of cb under key. Removing a callback
// that is not present is a no-op; removing from a key that was never
// registered is an error.
func (r *Registry[H]) RemoveHook(key string, cb Callback[H]) error {
	norm := Normalize(key)
	list, ok := r.hooks[norm]
	if !ok {
		return fmt.Errorf("%w: %s", ErrHookNotRegistered, key)
	}
	if isNil(cb) || !reflect.TypeOf(cb).Comparable() {
		return nil
	}
	if i := slices.Index(list, cb); i >= 0 {
		r.hooks[norm] = slices.Delete(list, i, i+1)
	}
	return nil
}

// TriggerHook returns a routine that invokes every callback under key, in
// registration order, passing h. Nothing runs until the routine is resumed.
// The callback list is captured when dispatch starts, so callbacks may add or
// remove hooks without disturbing the dispatch in progress.
//
// Each callback's routine is drained before the next callback is invoked. A
// nil routine counts as one that finishes at once. If the consumer stops early
// the remaining callbacks never run.
func (r *Registry[H]) TriggerHook(key string, h H) Routine {
	return func(yield func(Yield) bool) {
		callbacks := slices.Clone(r.hooks[Normalize(key)])
		for _, cb := range callbacks {
			routine := cb.Invoke(h)
			if routine == nil {
				continue
			}
			for y := range routine {
				if !yield(y) {
					return
				}
			}
		}
	}
}

// Len returns the number of callbacks registered under key.
func (r *Registry[H]) Len(key string) int {
	return len(r.hooks[Normalize(key)])
}

// Keys returns every key that has been registered, sorted.
func (r *Registry[H]) Keys() []string {
	keys := make([]string, 0, len(r.hooks))
	for k := range r.hooks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
