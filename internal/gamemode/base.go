package gamemode

import (
	"github.com/specialistvlad/modehooks/internal/hook"
	"github.com/specialistvlad/modehooks/internal/settings"
	"github.com/zclconf/go-cty/cty"
)

// Base implements the hook and settings parts of Handler. Concrete modes embed
// it and provide Name and the LifecycleOwner methods.
type Base struct {
	id       string
	resolve  Resolver
	self     Handler
	hooks    *hook.Registry[Handler]
	settings *settings.Controller
}

// Option configures a Base.
type Option func(*baseOptions)

type baseOptions struct {
	settings []settings.Option
}

// WithStorage keeps the settings collection in s rather than in memory.
func WithStorage(s settings.Storage) Option {
	return func(o *baseOptions) {
		o.settings = append(o.settings, settings.WithStorage(s))
	}
}

// WithSettingsObserver observes every installed settings collection.
func WithSettingsObserver(obs settings.Observer) Option {
	return func(o *baseOptions) {
		o.settings = append(o.settings, settings.WithObserver(obs))
	}
}

// NewBase binds a Base to self, the concrete handler that embeds it.
func NewBase(self Handler, id string, resolve Resolver, opts ...Option) *Base {
	var o baseOptions
	for _, opt := range opts {
		opt(&o)
	}
	b := &Base{
		id:      id,
		resolve: resolve,
		self:    self,
		hooks:   hook.NewRegistry[Handler](),
	}
	// SetSettings replays through the concrete handler so overrides fire.
	o.settings = append(o.settings, settings.WithChanger(self))
	b.settings = settings.NewController(o.settings...)
	return b
}

// GameModeID returns the id used to resolve the live instance.
func (b *Base) GameModeID() string {
	return b.id
}

// GameMode resolves the live instance. It is looked up on every call.
func (b *Base) GameMode() (Instance, error) {
	if b.resolve == nil {
		return nil, ErrResolverRequired
	}
	return b.resolve(b.id)
}

// AddHook registers cb under key.
func (b *Base) AddHook(key string, cb Hook) {
	b.hooks.AddHook(key, cb)
}

// RemoveHook removes the first occurrence of cb under key.
func (b *Base) RemoveHook(key string, cb Hook) error {
	return b.hooks.RemoveHook(key, cb)
}

// TriggerHook returns the routine that runs every callback under key with the
// concrete handler as argument.
func (b *Base) TriggerHook(key string) hook.Routine {
	return b.hooks.TriggerHook(key, b.self)
}

// HookKeys lists the registered hook keys.
func (b *Base) HookKeys() []string {
	return b.hooks.Keys()
}

// Settings returns the current collection.
func (b *Base) Settings() *settings.Collection {
	return b.settings.Settings()
}

// SetSettings installs c and replays every entry through the concrete
// handler's ChangeSetting.
func (b *Base) SetSettings(c *settings.Collection) {
	b.settings.SetSettings(c)
}

// ChangeSetting rebuilds the collection with value substituted for name.
// Overrides must call it to change the stored data.
func (b *Base) ChangeSetting(name string, value cty.Value) {
	b.settings.ChangeSetting(name, value)
}
