package settings

import (
	"encoding/json"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

type jsonEntry struct {
	Name  string          `json:"name"`
	Type  json.RawMessage `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON encodes the collection as an ordered array of
// {"name", "type", "value"} objects.
func (c *Collection) MarshalJSON() ([]byte, error) {
	out := make([]jsonEntry, 0, c.Len())
	for name, v := range c.All() {
		ty, err := ctyjson.MarshalType(v.Type())
		if err != nil {
			return nil, fmt.Errorf("setting '%s': marshal type: %w", name, err)
		}
		val, err := ctyjson.Marshal(v, v.Type())
		if err != nil {
			return nil, fmt.Errorf("setting '%s': marshal value: %w", name, err)
		}
		out = append(out, jsonEntry{Name: name, Type: ty, Value: val})
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the format written by MarshalJSON.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var raw []jsonEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	entries := make([]Entry, 0, len(raw))
	for _, r := range raw {
		ty, err := ctyjson.UnmarshalType(r.Type)
		if err != nil {
			return fmt.Errorf("setting '%s': unmarshal type: %w", r.Name, err)
		}
		var val cty.Value
		if val, err = ctyjson.Unmarshal(r.Value, ty); err != nil {
			return fmt.Errorf("setting '%s': unmarshal value: %w", r.Name, err)
		}
		entries = append(entries, Entry{Name: r.Name, Value: val})
	}
	decoded, err := New(entries...)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}
