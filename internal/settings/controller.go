package settings

import "github.com/zclconf/go-cty/cty"

// Storage is where the authoritative collection lives. Concrete modes may
// supply their own; MemoryStorage is the default.
type Storage interface {
	Settings() *Collection
	StoreSettings(*Collection)
}

// Changer is the per-setting change notification. Concrete modes implement it
// to keep derived state in sync, delegating to Controller.ChangeSetting for
// the data itself. It must tolerate being called with a value that is already
// stored.
type Changer interface {
	ChangeSetting(name string, value cty.Value)
}

// Observer is told about every installed collection.
type Observer func(old, next *Collection)

// MemoryStorage keeps the collection in a field.
type MemoryStorage struct {
	current *Collection
}

// Settings implements Storage.
func (m *MemoryStorage) Settings() *Collection { return m.current }

// StoreSettings implements Storage.
func (m *MemoryStorage) StoreSettings(c *Collection) { m.current = c }

// Controller applies whole-collection replacement and single-setting changes.
type Controller struct {
	storage   Storage
	changer   Changer
	observers []Observer
}

// Option configures a Controller.
type Option func(*Controller)

// WithStorage replaces the default in-memory storage.
func WithStorage(s Storage) Option {
	return func(c *Controller) {
		if s != nil {
			c.storage = s
		}
	}
}

// WithChanger routes SetSettings' per-entry replay through ch instead of the
// controller's own ChangeSetting.
func WithChanger(ch Changer) Option {
	return func(c *Controller) {
		if ch != nil {
			c.changer = ch
		}
	}
}

// WithObserver registers an observer for installed collections.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// NewController creates a controller.
func NewController(opts ...Option) *Controller {
	c := &Controller{storage: &MemoryStorage{}}
	c.changer = c
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Settings returns the current collection.
func (c *Controller) Settings() *Collection {
	return c.storage.Settings()
}

// SetSettings installs next, then replays every entry of it through the
// changer in order. The new collection is already current during the replay.
func (c *Controller) SetSettings(next *Collection) {
	c.install(next)
	installed := c.storage.Settings()
	for _, e := range installed.Entries() {
		c.changer.ChangeSetting(e.Name, e.Value)
	}
}

// ChangeSetting rebuilds the current collection with value substituted for
// name and installs the result. Names are never added or removed; an unknown
// name leaves the data as it was.
func (c *Controller) ChangeSetting(name string, value cty.Value) {
	c.install(c.storage.Settings().replace(name, value))
}

func (c *Controller) install(next *Collection) {
	old := c.storage.Settings()
	c.storage.StoreSettings(next)
	for _, o := range c.observers {
		o(old, next)
	}
}
