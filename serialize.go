package ordmap

import (
	gojson "github.com/goccy/go-json"
)

// Entry is a key/value record of a serialized map.
type Entry struct {
	Key   interface{} `json:"key"`
	Value interface{} `json:"value"`
}

// Serialize returns the entries in iteration order.
func (m *Map) Serialize() []Entry {
	m.flush()
	r := make([]Entry, 0, m.count)
	for slot := range m.storage.all() {
		r = append(r, Entry{Key: slot.rawKey, Value: slot.value})
	}
	return r
}

// MarshalJSON encodes the map as a JSON array of {"key": ..., "value": ...}
// objects, since keys are not restricted to strings.
func (m *Map) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(m.Serialize())
}
