package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/modehooks/internal/gamemode"
)

var (
	// ErrModeNotRegistered indicates an unknown mode type.
	ErrModeNotRegistered = errors.New("game mode type is not registered")
	// ErrInstanceNotFound indicates no live instance with the requested id.
	ErrInstanceNotFound = errors.New("game mode instance not found")
)

// Factory builds a handler for the given id, resolving its instance through
// resolve.
type Factory func(id string, resolve gamemode.Resolver) gamemode.Handler

// Module is the interface that every mode package implements to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds mode factories and live instances for a single application.
type Registry struct {
	factories map[string]Factory
	instances map[string]gamemode.Instance
}

// New creates a registry and registers the given modules.
func New(modules ...Module) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		instances: make(map[string]gamemode.Instance),
	}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// RegisterMode registers the factory for a mode type.
func (r *Registry) RegisterMode(modeType string, factory Factory) {
	if factory == nil {
		panic(fmt.Sprintf("game mode '%s' registered without a factory", modeType))
	}
	if _, exists := r.factories[modeType]; exists {
		panic(fmt.Sprintf("game mode with type '%s' already registered", modeType))
	}
	slog.Debug("Registering game mode.", "type", modeType)
	r.factories[modeType] = factory
}

// Modes returns the registered mode types, sorted.
func (r *Registry) Modes() []string {
	modes := make([]string, 0, len(r.factories))
	for m := range r.factories {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	return modes
}

// NewHandler builds a handler of the given type bound to id.
func (r *Registry) NewHandler(modeType, id string) (gamemode.Handler, error) {
	factory, ok := r.factories[modeType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModeNotRegistered, modeType)
	}
	return factory(id, r.Resolve), nil
}

// RegisterInstance makes a live instance resolvable by its id, replacing any
// previous instance with the same id.
func (r *Registry) RegisterInstance(inst gamemode.Instance) {
	slog.Debug("Registering game mode instance.", "id", inst.ID())
	r.instances[inst.ID()] = inst
}

// RemoveInstance forgets the instance with the given id.
func (r *Registry) RemoveInstance(id string) {
	delete(r.instances, id)
}

// Resolve implements gamemode.Resolver.
func (r *Registry) Resolve(id string) (gamemode.Instance, error) {
	inst, ok := r.instances[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, id)
	}
	return inst, nil
}
