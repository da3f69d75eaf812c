package ordmap

import (
	"fmt"
	"iter"

	"github.com/xaionaro-go/ordmap/hasher"
	I "github.com/xaionaro-go/ordmap/interfaces"
)

type Key = I.Key

// Map is an insertion-ordered map accepting keys of any supported kind:
// integers, floats, booleans, strings, nil, identity keys (pointers and
// channels), handles and composite values (slices, arrays, maps and
// structs). See hasher.Classify for the exact rules.
//
// Iteration follows the order in which keys were first inserted; a deleted
// and re-inserted key moves to the end.
//
// A Map is not safe for concurrent use.
type Map struct {
	hasher    hasher.Hasher
	storage   *storage
	index     *bucketIndex
	count     int
	pending   *pendingSlot
	logger    *Logger
	validator *validator
	blockSize uint64
}

var _ I.Map = (*Map)(nil)

func New(opts ...Option) *Map {
	o := options{
		hasher: hasher.New(),
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	blockSize := fixBlockSize(o.blockSize, o.logger)
	stor := newStorage(blockSize)
	return &Map{
		hasher:    o.hasher,
		storage:   stor,
		index:     newBucketIndex(blockSize, o.hasher, stor),
		logger:    o.logger,
		validator: o.validator,
		blockSize: blockSize,
	}
}

// NewWithArgs is a shorthand for New(WithBlockSize(blockSize), WithHasher(customHasher)).
func NewWithArgs(blockSize uint64, customHasher hasher.Hasher) *Map {
	return New(WithBlockSize(blockSize), WithHasher(customHasher))
}

func (m *Map) classify(keyI Key) (hasher.Key, uint64, error) {
	key, err := hasher.Classify(keyI)
	if err != nil {
		return nil, 0, err
	}
	return key, m.hasher.Hash(key), nil
}

func (m *Map) insertSlot(key hasher.Key, rawKey Key, hashValue uint64, value interface{}) *storageItem {
	slot := m.storage.append(key, rawKey, hashValue, value)
	m.index.insert(hashValue, slot.id)
	m.count++
	return slot
}

// Set stores the value under the key, overwriting the value of an existing
// entry in place (the entry keeps its position).
func (m *Map) Set(key Key, value interface{}) error {
	m.flush()
	if m.validator != nil {
		if err := m.validator.check(key, value); err != nil {
			return err
		}
	}
	_, err := m.set(key, value)
	return err
}

func (m *Map) set(keyI Key, value interface{}) (*storageItem, error) {
	key, hashValue, err := m.classify(keyI)
	if err != nil {
		return nil, err
	}
	if slot, ok := m.index.lookup(hashValue, key); ok {
		slot.value = value
		return slot, nil
	}
	return m.insertSlot(key, keyI, hashValue, value), nil
}

// Get returns a reference to the value stored under the key. If the key is
// absent, the reference points to a pending slot, see Ref.
func (m *Map) Get(keyI Key) (*Ref, error) {
	m.flush()
	key, hashValue, err := m.classify(keyI)
	if err != nil {
		return nil, err
	}
	if slot, ok := m.index.lookup(hashValue, key); ok {
		return &Ref{m: m, rawKey: keyI, slot: slot}, nil
	}
	return &Ref{m: m, rawKey: keyI, pending: m.arm(key, keyI, hashValue)}, nil
}

// Lookup returns the value stored under the key or NotFound. Unlike Get it
// never arms a pending slot.
func (m *Map) Lookup(keyI Key) (interface{}, error) {
	m.flush()
	key, hashValue, err := m.classify(keyI)
	if err != nil {
		return nil, err
	}
	slot, ok := m.index.lookup(hashValue, key)
	if !ok {
		return nil, NotFound
	}
	return slot.value, nil
}

// Has reports whether the key is present. Keys of unsupported types are
// never present.
func (m *Map) Has(keyI Key) bool {
	m.flush()
	key, hashValue, err := m.classify(keyI)
	if err != nil {
		return false
	}
	_, ok := m.index.lookup(hashValue, key)
	return ok
}

// Delete removes the key and reports whether it was present.
func (m *Map) Delete(keyI Key) bool {
	m.flush()
	key, hashValue, err := m.classify(keyI)
	if err != nil {
		return false
	}
	slot, ok := m.index.lookup(hashValue, key)
	if !ok {
		return false
	}
	m.index.remove(hashValue, slot.id)
	m.storage.kill(slot.id)
	m.count--
	return true
}

// Clear removes all the entries and drops the pending slot. Ids start
// from zero again.
func (m *Map) Clear() {
	pendingDropped := m.pending != nil
	if pendingDropped {
		m.pending.armed = false
		m.pending = nil
	}
	m.logger.LogClear(m.count, pendingDropped)
	m.storage.reset(m.blockSize)
	m.index.reset(m.blockSize)
	m.count = 0
}

// Len returns the amount of entries.
func (m *Map) Len() int {
	m.flush()
	return m.count
}

// All returns an iterator over the entries in insertion order. Every call
// of the returned function is an independent traversal.
func (m *Map) All() iter.Seq2[Key, interface{}] {
	return func(yield func(Key, interface{}) bool) {
		m.flush()
		for slot := range m.storage.all() {
			if !yield(slot.rawKey, slot.value) {
				return
			}
		}
	}
}

// Keys returns a slice that contains all keys in insertion order.
func (m *Map) Keys() []interface{} {
	m.flush()
	r := make([]interface{}, 0, m.count)
	for slot := range m.storage.all() {
		r = append(r, slot.rawKey)
	}
	return r
}

// Values returns a slice that contains all values in insertion order.
func (m *Map) Values() []interface{} {
	m.flush()
	r := make([]interface{}, 0, m.count)
	for slot := range m.storage.all() {
		r = append(r, slot.value)
	}
	return r
}

// Signature describes the map type, including declared key and value types
// of a validated map.
func (m *Map) Signature() string {
	if m.validator != nil {
		return m.validator.signature
	}
	return "Map"
}

func (m *Map) String() string {
	return fmt.Sprintf("%s(len=%d)", m.Signature(), m.count)
}

// CheckConsistency verifies that the count matches the live slots and that
// every live slot is reachable through exactly one bucket.
func (m *Map) CheckConsistency() error {
	m.flush()

	count := 0
	for slot := range m.storage.all() {
		count++

		if hashValue := m.hasher.Hash(slot.key); hashValue != slot.hashValue {
			return fmt.Errorf("slot %v: stored hash %x != recomputed %x", slot.id, slot.hashValue, hashValue)
		}
		found, ok := m.index.lookup(slot.hashValue, slot.key)
		if !ok {
			return fmt.Errorf("slot %v (key %v) is not reachable through the index", slot.id, slot.rawKey)
		}
		if found != slot {
			return fmt.Errorf("key %v resolves to slot %v instead of %v", slot.rawKey, found.id, slot.id)
		}
	}
	if count != m.count {
		return fmt.Errorf("count != m.Len(): %v %v", count, m.count)
	}

	seen := make(map[uint64]int, count)
	for hashValue, b := range m.index.buckets {
		if len(b.ids) == 0 {
			return fmt.Errorf("empty bucket %x", hashValue)
		}
		for _, id := range b.ids {
			slot := m.storage.getItem(id)
			if slot.IsSet() != isSet_set {
				return fmt.Errorf("bucket %x references dead slot %v", hashValue, id)
			}
			if slot.hashValue != hashValue {
				return fmt.Errorf("slot %v is in bucket %x instead of %x", id, hashValue, slot.hashValue)
			}
			seen[id]++
		}
	}
	if len(seen) != count {
		return fmt.Errorf("buckets reference %v slots, %v are live", len(seen), count)
	}
	for id, n := range seen {
		if n != 1 {
			return fmt.Errorf("slot %v is referenced %v times", id, n)
		}
	}
	return nil
}
