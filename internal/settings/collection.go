package settings

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

var (
	// ErrDuplicateName indicates two entries with the same name in one collection.
	ErrDuplicateName = errors.New("duplicate setting name")
	// ErrNameRequired indicates an entry without a name.
	ErrNameRequired = errors.New("setting name is required")
)

// Entry is a single named setting.
type Entry struct {
	Name  string
	Value cty.Value
}

// Of builds an entry from a native Go value, inferring its cty type.
func Of(name string, v any) (Entry, error) {
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return Entry{}, fmt.Errorf("setting '%s': %w", name, err)
	}
	val, err := gocty.ToCtyValue(v, ty)
	if err != nil {
		return Entry{}, fmt.Errorf("setting '%s': %w", name, err)
	}
	return Entry{Name: name, Value: val}, nil
}

// MustOf is Of for values known to convert, such as literals in defaults.
func MustOf(name string, v any) Entry {
	e, err := Of(name, v)
	if err != nil {
		panic(err)
	}
	return e
}

// Decode converts the entry's value into target, which must be a pointer.
func (e Entry) Decode(target any) error {
	if err := gocty.FromCtyValue(e.Value, target); err != nil {
		return fmt.Errorf("setting '%s': %w", e.Name, err)
	}
	return nil
}

// Collection is an immutable, insertion-ordered set of uniquely named entries.
// The nil *Collection is a valid empty collection.
type Collection struct {
	entries []Entry
	index   map[string]int
}

// New builds a collection from entries in the given order.
func New(entries ...Entry) (*Collection, error) {
	c := &Collection{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, ErrNameRequired
		}
		if _, exists := c.index[e.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, e.Name)
		}
		c.index[e.Name] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// MustNew is New that panics on invalid input.
func MustNew(entries ...Entry) *Collection {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Get returns the value stored under name.
func (c *Collection) Get(name string) (cty.Value, bool) {
	if c == nil {
		return cty.NilVal, false
	}
	i, ok := c.index[name]
	if !ok {
		return cty.NilVal, false
	}
	return c.entries[i].Value, true
}

// Has reports whether name is present.
func (c *Collection) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Names returns the entry names in order.
func (c *Collection) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the entries in order.
func (c *Collection) Entries() []Entry {
	if c == nil {
		return nil
	}
	return slices.Clone(c.entries)
}

// All iterates name/value pairs in order.
func (c *Collection) All() iter.Seq2[string, cty.Value] {
	return func(yield func(string, cty.Value) bool) {
		if c == nil {
			return
		}
		for _, e := range c.entries {
			if !yield(e.Name, e.Value) {
				return
			}
		}
	}
}

// Equal reports whether both collections hold the same names, in the same
// order, with identical values.
func (c *Collection) Equal(other *Collection) bool {
	if c.Len() != other.Len() {
		return false
	}
	for i := range c.Len() {
		a, b := c.entries[i], other.entries[i]
		if a.Name != b.Name || !a.Value.RawEquals(b.Value) {
			return false
		}
	}
	return true
}

// String renders the collection as {name=value, ...} for logs.
func (c *Collection) String() string {
	out := "{"
	for i, e := range c.Entries() {
		if i > 0 {
			out += ", "
		}
		out += e.Name + "=" + e.Value.GoString()
	}
	return out + "}"
}

// Overlay returns a collection holding every entry of base, with values taken
// from over where over has the same name, followed by the entries only over
// has. Neither input is modified.
func Overlay(base, over *Collection) *Collection {
	next := &Collection{
		entries: make([]Entry, 0, base.Len()+over.Len()),
		index:   make(map[string]int, base.Len()+over.Len()),
	}
	add := func(name string, v cty.Value) {
		next.index[name] = len(next.entries)
		next.entries = append(next.entries, Entry{Name: name, Value: v})
	}
	for name, v := range base.All() {
		if ov, ok := over.Get(name); ok {
			v = ov
		}
		add(name, v)
	}
	for name, v := range over.All() {
		if !base.Has(name) {
			add(name, v)
		}
	}
	return next
}

// replace returns a new collection with the same names and order, where the
// entry called name carries value instead. Unknown names copy through.
func (c *Collection) replace(name string, value cty.Value) *Collection {
	next := &Collection{
		entries: make([]Entry, 0, c.Len()),
		index:   make(map[string]int, c.Len()),
	}
	for n, v := range c.All() {
		if n == name {
			v = value
		}
		next.index[n] = len(next.entries)
		next.entries = append(next.entries, Entry{Name: n, Value: v})
	}
	return next
}
