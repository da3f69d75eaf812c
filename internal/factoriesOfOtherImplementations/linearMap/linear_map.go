// Package linearMap is an ordered map doing a linear scan on every
// operation. It is slow on purpose: tests use it as the reference
// behaviour and benchmarks as the baseline.
package linearMap

import (
	"github.com/xaionaro-go/ordmap/errors"
	"github.com/xaionaro-go/ordmap/hasher"
	I "github.com/xaionaro-go/ordmap/interfaces"
)

type entry struct {
	key    hasher.Key
	rawKey I.Key
	value  interface{}
}

type linearMap struct {
	entries []entry
}

func New() I.Map {
	return &linearMap{}
}

func NewWithArgs(blockSize uint64) I.Map {
	return &linearMap{
		entries: make([]entry, 0, blockSize),
	}
}

func (m *linearMap) find(keyI I.Key) (int, hasher.Key, error) {
	key, err := hasher.Classify(keyI)
	if err != nil {
		return -1, nil, err
	}
	for i := range m.entries {
		if hasher.IsEqualKey(m.entries[i].key, key) {
			return i, key, nil
		}
	}
	return -1, key, nil
}

func (m *linearMap) Set(keyI I.Key, value interface{}) error {
	idx, key, err := m.find(keyI)
	if err != nil {
		return err
	}
	if idx >= 0 {
		m.entries[idx].value = value
		return nil
	}
	m.entries = append(m.entries, entry{key: key, rawKey: keyI, value: value})
	return nil
}

func (m *linearMap) Lookup(keyI I.Key) (interface{}, error) {
	idx, _, err := m.find(keyI)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, errors.NotFound
	}
	return m.entries[idx].value, nil
}

func (m *linearMap) Has(keyI I.Key) bool {
	idx, _, _ := m.find(keyI)
	return idx >= 0
}

func (m *linearMap) Delete(keyI I.Key) bool {
	idx, _, _ := m.find(keyI)
	if idx < 0 {
		return false
	}
	m.entries = append(m.entries[:idx], m.entries[idx+1:]...)
	return true
}

func (m *linearMap) Len() int {
	return len(m.entries)
}

func (m *linearMap) Clear() {
	*m = linearMap{}
}

func (m *linearMap) Keys() []interface{} {
	r := make([]interface{}, 0, len(m.entries))
	for _, e := range m.entries {
		r = append(r, e.rawKey)
	}
	return r
}
