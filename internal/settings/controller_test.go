package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// derivedMode mimics a concrete mode that caches state per setting.
type derivedMode struct {
	ctrl    *Controller
	changes []string
	seen    []*Collection
	cache   map[string]cty.Value
}

func newDerivedMode() *derivedMode {
	m := &derivedMode{cache: make(map[string]cty.Value)}
	m.ctrl = NewController(WithChanger(m))
	return m
}

func (m *derivedMode) ChangeSetting(name string, value cty.Value) {
	m.seen = append(m.seen, m.ctrl.Settings())
	m.ctrl.ChangeSetting(name, value)
	m.changes = append(m.changes, name)
	m.cache[name] = value
}

func ab() *Collection {
	return MustNew(
		Entry{Name: "a", Value: cty.NumberIntVal(1)},
		Entry{Name: "b", Value: cty.NumberIntVal(2)},
	)
}

func TestSetSettings_InstallsAndReplaysInOrder(t *testing.T) {
	m := newDerivedMode()
	m.ctrl.SetSettings(ab())

	assert.True(t, m.ctrl.Settings().Equal(ab()))
	assert.Equal(t, []string{"a", "b"}, m.changes)
	assert.True(t, m.cache["b"].RawEquals(cty.NumberIntVal(2)))
}

func TestSetSettings_ReplaySeesFullNewCollection(t *testing.T) {
	m := newDerivedMode()
	m.ctrl.SetSettings(MustNew(Entry{Name: "old", Value: cty.True}))
	m.seen = nil

	m.ctrl.SetSettings(ab())
	require.Len(t, m.seen, 2)
	assert.True(t, m.seen[0].Equal(ab()), "first replay already sees the whole new collection")
}

func TestSetSettings_Idempotent(t *testing.T) {
	m := newDerivedMode()
	m.ctrl.SetSettings(ab())
	first := m.ctrl.Settings()

	m.changes = nil
	m.ctrl.SetSettings(ab())

	assert.True(t, m.ctrl.Settings().Equal(first))
	assert.Equal(t, []string{"a", "b"}, m.changes)
}

func TestChangeSetting_ReplacesOnlyTargetedValue(t *testing.T) {
	c := NewController()
	c.SetSettings(ab())
	before := c.Settings()

	c.ChangeSetting("b", cty.NumberIntVal(99))

	after := c.Settings()
	assert.NotSame(t, before, after, "a new collection is installed")
	assert.Equal(t, []string{"a", "b"}, after.Names())
	v, _ := after.Get("b")
	assert.True(t, v.RawEquals(cty.NumberIntVal(99)))
	assert.True(t, before.Equal(ab()), "the previous collection is untouched")
}

func TestChangeSetting_UnknownNameLeavesData(t *testing.T) {
	m := newDerivedMode()
	m.ctrl.SetSettings(ab())
	m.changes = nil

	m.ChangeSetting("z", cty.NumberIntVal(5))

	assert.True(t, m.ctrl.Settings().Equal(ab()))
	assert.False(t, m.ctrl.Settings().Has("z"))
	assert.Equal(t, []string{"z"}, m.changes, "the override still runs")
}

func TestChangeSetting_BeforeAnySettings(t *testing.T) {
	c := NewController()
	c.ChangeSetting("a", cty.True)
	assert.Equal(t, 0, c.Settings().Len())
}

func TestObserverSeesEveryInstall(t *testing.T) {
	type install struct{ old, next *Collection }
	var installs []install
	storage := &MemoryStorage{}
	c := NewController(
		WithStorage(storage),
		WithObserver(func(old, next *Collection) {
			installs = append(installs, install{old, next})
		}),
	)

	c.SetSettings(ab())
	// One install for SetSettings plus one rebuild per replayed entry.
	require.Len(t, installs, 3)
	assert.Nil(t, installs[0].old)
	assert.Same(t, installs[0].next, installs[1].old)
	assert.Same(t, storage.Settings(), installs[2].next)

	c.ChangeSetting("a", cty.NumberIntVal(7))
	require.Len(t, installs, 4)
	assert.NotSame(t, installs[3].old, installs[3].next)
}
