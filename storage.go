package ordmap

import (
	"iter"

	"github.com/xaionaro-go/ordmap/hasher"
)

type isSet uint8

const (
	isSet_notSet = isSet(iota) // 0
	isSet_set
	isSet_removed
)

type storageItem struct {
	isSet     isSet
	id        uint64
	hashValue uint64
	key       hasher.Key
	rawKey    interface{}
	value     interface{}
}

func (slot *storageItem) IsSet() isSet {
	if slot == nil {
		return isSet_notSet
	}
	return slot.isSet
}

// storage is an append-only slot arena addressed by id. Ids are never
// reused: a removed slot stays a tombstone until reset.
type storage struct {
	items  []*storageItem
	nextID uint64
}

// maximalPreallocation caps the capacity reserved up front, larger maps
// grow on demand.
const maximalPreallocation = 1 << 16

func preallocationHint(size uint64) int {
	if size > maximalPreallocation {
		return maximalPreallocation
	}
	return int(size)
}

func newStorage(size uint64) *storage {
	return &storage{
		items: make([]*storageItem, 0, preallocationHint(size)),
	}
}

// append is the only place nextID advances.
func (stor *storage) append(key hasher.Key, rawKey interface{}, hashValue uint64, value interface{}) *storageItem {
	slot := &storageItem{
		isSet:     isSet_set,
		id:        stor.nextID,
		hashValue: hashValue,
		key:       key,
		rawKey:    rawKey,
		value:     value,
	}
	stor.items = append(stor.items, slot)
	stor.nextID++
	return slot
}

func (stor *storage) getItem(id uint64) *storageItem {
	if id >= uint64(len(stor.items)) {
		return nil
	}
	return stor.items[id]
}

// kill tombstones the slot and releases its key and value.
func (stor *storage) kill(id uint64) {
	slot := stor.getItem(id)
	if slot.IsSet() != isSet_set {
		return
	}
	slot.isSet = isSet_removed
	slot.key = nil
	slot.rawKey = nil
	slot.value = nil
	stor.items[id] = nil
}

func (stor *storage) size() uint64 {
	return stor.nextID
}

// all yields live slots in id order. The length is re-read on every step,
// slots appended during the traversal are yielded and removed ones are not.
func (stor *storage) all() iter.Seq[*storageItem] {
	return func(yield func(*storageItem) bool) {
		for id := 0; id < len(stor.items); id++ {
			slot := stor.items[id]
			if slot.IsSet() != isSet_set {
				continue
			}
			if !yield(slot) {
				return
			}
		}
	}
}

// reset tombstones every live slot, so references obtained before it see
// their entries gone, and starts over with ids from zero.
func (stor *storage) reset(size uint64) {
	for _, slot := range stor.items {
		if slot.IsSet() != isSet_set {
			continue
		}
		slot.isSet = isSet_removed
		slot.key = nil
		slot.rawKey = nil
		slot.value = nil
	}
	*stor = storage{
		items: make([]*storageItem, 0, preallocationHint(size)),
	}
}
