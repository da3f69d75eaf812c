package ordmap

import (
	"fmt"
	"reflect"

	"github.com/xaionaro-go/ordmap/errors"
	"github.com/xaionaro-go/ordmap/hasher"
)

// pendingSlot is an entry armed by Get on an absent key. It becomes a real
// entry only if a non-nil value was written to it before the next
// operation on the map.
type pendingSlot struct {
	key       hasher.Key
	rawKey    interface{}
	hashValue uint64
	value     interface{}
	armed     bool

	// slot is the entry the pending value was committed to, if any.
	slot *storageItem
}

func (m *Map) arm(key hasher.Key, rawKey interface{}, hashValue uint64) *pendingSlot {
	p := &pendingSlot{
		key:       key,
		rawKey:    rawKey,
		hashValue: hashValue,
		armed:     true,
	}
	m.pending = p
	return p
}

// flush resolves the pending slot. Every public method calls it before
// doing anything else.
func (m *Map) flush() {
	p := m.pending
	if p == nil {
		return
	}
	m.pending = nil
	p.armed = false

	if p.value == nil {
		m.logger.LogDiscard(p.rawKey)
		return
	}

	if slot, ok := m.index.lookup(p.hashValue, p.key); ok {
		// Unreachable through the public API: every path that inserts
		// flushes first.
		if !reflect.DeepEqual(slot.value, p.value) {
			panic(fmt.Errorf("%w: key %v was stored while a pending write to it was outstanding (stored: %v, pending: %v)",
				errors.InternalConsistencyViolation, p.rawKey, slot.value, p.value))
		}
		p.slot = slot
		return
	}

	p.slot = m.insertSlot(p.key, p.rawKey, p.hashValue, p.value)
	m.logger.LogCommit(p.rawKey, p.slot.id)
}

// Ref is a reference to a value stored in a Map, returned by Map.Get.
//
// When the key was absent, the reference points to a pending slot: writing
// a non-nil value through it creates the entry on the next operation on the
// map, not writing anything leaves the map unchanged. Only one pending slot
// exists at a time, so a reference to it must be written before the map is
// used again.
type Ref struct {
	m       *Map
	rawKey  interface{}
	slot    *storageItem
	pending *pendingSlot
}

func (r *Ref) target() *storageItem {
	if r.slot != nil {
		return r.slot
	}
	if r.pending != nil {
		return r.pending.slot
	}
	return nil
}

// Key returns the key the reference was obtained with.
func (r *Ref) Key() interface{} {
	return r.rawKey
}

// Present reports whether the referenced entry exists in the map. It is
// false for a pending slot that has not been committed yet.
func (r *Ref) Present() bool {
	return r.target().IsSet() == isSet_set
}

// Load returns the referenced value, nil if there is none.
func (r *Ref) Load() interface{} {
	if r.pending != nil && r.pending.armed {
		return r.pending.value
	}
	if slot := r.target(); slot.IsSet() == isSet_set {
		return slot.value
	}
	return nil
}

// Store writes the value through the reference. If the referenced entry
// has been deleted or cleared, or its pending slot was discarded in the
// meantime, the value is stored under the key as by Map.Set and the
// reference follows the new entry.
func (r *Ref) Store(value interface{}) error {
	if r.m.validator != nil {
		if err := r.m.validator.check(r.rawKey, value); err != nil {
			return err
		}
	}
	if r.pending != nil && r.pending.armed {
		r.pending.value = value
		return nil
	}
	if slot := r.target(); slot.IsSet() == isSet_set {
		slot.value = value
		return nil
	}
	r.m.flush()
	slot, err := r.m.set(r.rawKey, value)
	if err != nil {
		return err
	}
	r.slot, r.pending = slot, nil
	return nil
}

// Pointer returns the address of the referenced value for in-place
// mutation. Writes through it skip type validation. It returns nil if the
// referenced entry no longer exists.
func (r *Ref) Pointer() *interface{} {
	if r.pending != nil && r.pending.armed {
		return &r.pending.value
	}
	if slot := r.target(); slot.IsSet() == isSet_set {
		return &slot.value
	}
	return nil
}
