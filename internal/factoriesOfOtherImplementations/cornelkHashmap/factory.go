// Package cornelkHashmap wraps github.com/cornelk/hashmap keyed by the
// complete hash of a key, for benchmarks only. It keeps no insertion order
// and grows in the background, so a lookup right after a set may miss.
package cornelkHashmap

import (
	"github.com/cornelk/hashmap"

	"github.com/xaionaro-go/ordmap/errors"
	"github.com/xaionaro-go/ordmap/hasher"
	I "github.com/xaionaro-go/ordmap/interfaces"
)

type entry struct {
	key    hasher.Key
	rawKey I.Key
	value  interface{}
}

type hashmapWrapper struct {
	hasher hasher.Hasher
	m      *hashmap.HashMap
	count  int
}

func New() I.Map {
	return NewWithArgs(0)
}

func NewWithArgs(blockSize uint64) I.Map {
	if blockSize == 0 {
		blockSize = hashmap.DefaultSize
	}
	return &hashmapWrapper{
		hasher: hasher.New(),
		m:      hashmap.New(uintptr(blockSize)),
	}
}

func (w *hashmapWrapper) find(keyI I.Key) (uint64, []*entry, int, hasher.Key, error) {
	key, err := hasher.Classify(keyI)
	if err != nil {
		return 0, nil, -1, nil, err
	}
	hashValue := w.hasher.Hash(key)
	v, ok := w.m.Get(hashValue)
	if !ok {
		return hashValue, nil, -1, key, nil
	}
	chain := v.([]*entry)
	for i, e := range chain {
		if w.hasher.Equal(e.key, key) {
			return hashValue, chain, i, key, nil
		}
	}
	return hashValue, chain, -1, key, nil
}

func (w *hashmapWrapper) Set(keyI I.Key, value interface{}) error {
	hashValue, chain, idx, key, err := w.find(keyI)
	if err != nil {
		return err
	}
	if idx >= 0 {
		chain[idx].value = value
		return nil
	}
	w.m.Set(hashValue, append(chain[:len(chain):len(chain)], &entry{key: key, rawKey: keyI, value: value}))
	w.count++
	return nil
}

func (w *hashmapWrapper) Lookup(keyI I.Key) (interface{}, error) {
	_, chain, idx, _, err := w.find(keyI)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, errors.NotFound
	}
	return chain[idx].value, nil
}

func (w *hashmapWrapper) Has(keyI I.Key) bool {
	_, _, idx, _, _ := w.find(keyI)
	return idx >= 0
}

func (w *hashmapWrapper) Delete(keyI I.Key) bool {
	hashValue, chain, idx, _, _ := w.find(keyI)
	if idx < 0 {
		return false
	}
	if len(chain) == 1 {
		w.m.Del(hashValue)
	} else {
		rest := make([]*entry, 0, len(chain)-1)
		rest = append(rest, chain[:idx]...)
		w.m.Set(hashValue, append(rest, chain[idx+1:]...))
	}
	w.count--
	return true
}

func (w *hashmapWrapper) Len() int {
	return w.count
}

func (w *hashmapWrapper) Clear() {
	w.m = hashmap.New(hashmap.DefaultSize)
	w.count = 0
}

// Keys returns the keys in the order of the underlying table, not in
// insertion order.
func (w *hashmapWrapper) Keys() []interface{} {
	r := make([]interface{}, 0, w.count)
	for kv := range w.m.Iter() {
		for _, e := range kv.Value.([]*entry) {
			r = append(r, e.rawKey)
		}
	}
	return r
}
