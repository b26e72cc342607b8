package settings

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestNew_PreservesInsertionOrder(t *testing.T) {
	c := MustNew(
		Entry{Name: "zeta", Value: cty.NumberIntVal(1)},
		Entry{Name: "alpha", Value: cty.True},
		Entry{Name: "mid", Value: cty.StringVal("x")},
	)

	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, c.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	v, ok := c.Get("alpha")
	require.True(t, ok)
	assert.True(t, v.RawEquals(cty.True))
	assert.False(t, c.Has("missing"))
}

func TestNew_RejectsInvalidEntries(t *testing.T) {
	testCases := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{
			name:    "duplicate name",
			entries: []Entry{{Name: "a", Value: cty.True}, {Name: "a", Value: cty.False}},
			wantErr: ErrDuplicateName,
		},
		{
			name:    "empty name",
			entries: []Entry{{Name: "", Value: cty.True}},
			wantErr: ErrNameRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.entries...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func TestNilCollectionIsEmpty(t *testing.T) {
	var c *Collection
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Names())
	assert.True(t, c.Equal(MustNew()))
	for range c.All() {
		t.Fatal("nil collection yielded an entry")
	}
}

func TestOfAndDecode(t *testing.T) {
	e, err := Of("roundsToWinGame", 5)
	require.NoError(t, err)
	assert.True(t, e.Value.RawEquals(cty.NumberIntVal(5)))

	var rounds int
	require.NoError(t, e.Decode(&rounds))
	assert.Equal(t, 5, rounds)

	var flag bool
	err = e.Decode(&flag)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roundsToWinGame")
}

func TestCollectionJSONRoundTrip(t *testing.T) {
	c := MustNew(
		MustOf("roundsToWinGame", 3),
		MustOf("allowTeams", false),
		MustOf("map", "arena"),
		MustOf("spawns", []string{"north", "south"}),
	)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"roundsToWinGame"`)

	var decoded Collection
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, c.Equal(&decoded), "got %s", decoded.String())
	assert.Equal(t, c.Names(), decoded.Names())
}

func TestCollectionUnmarshalRejectsDuplicates(t *testing.T) {
	data := `[{"name":"a","type":"bool","value":true},{"name":"a","type":"bool","value":false}]`
	var c Collection
	err := json.Unmarshal([]byte(data), &c)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestOverlay(t *testing.T) {
	base := MustNew(
		MustOf("rounds", 5),
		MustOf("teams", true),
	)
	over := MustNew(
		MustOf("map", "yard"),
		MustOf("rounds", 1),
	)

	got := Overlay(base, over)

	want := MustNew(
		MustOf("rounds", 1),
		MustOf("teams", true),
		MustOf("map", "yard"),
	)
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)

	assert.Equal(t, []string{"rounds", "teams"}, base.Names(), "base must not change")
	assert.Equal(t, 2, over.Len(), "over must not change")
	assert.True(t, Overlay(nil, nil).Equal(MustNew()))
}
