package ordmap

import (
	"github.com/xaionaro-go/ordmap/hasher"
)

// bucket is the collision group of slot ids sharing a hash value, in
// insertion order.
type bucket struct {
	ids []uint64
}

type bucketIndex struct {
	hasher  hasher.Hasher
	storage *storage
	buckets map[uint64]*bucket
}

func newBucketIndex(blockSize uint64, h hasher.Hasher, stor *storage) *bucketIndex {
	return &bucketIndex{
		hasher:  h,
		storage: stor,
		buckets: make(map[uint64]*bucket, preallocationHint(blockSize)),
	}
}

func (idx *bucketIndex) getBucket(hashValue uint64) *bucket {
	return idx.buckets[hashValue]
}

// lookup scans the bucket in insertion order, the first slot with an equal
// key wins.
func (idx *bucketIndex) lookup(hashValue uint64, key hasher.Key) (*storageItem, bool) {
	b := idx.getBucket(hashValue)
	if b == nil {
		return nil, false
	}
	for _, id := range b.ids {
		slot := idx.storage.getItem(id)
		if slot.IsSet() != isSet_set {
			continue
		}
		if idx.hasher.Equal(slot.key, key) {
			return slot, true
		}
	}
	return nil, false
}

func (idx *bucketIndex) insert(hashValue uint64, id uint64) {
	b := idx.getBucket(hashValue)
	if b == nil {
		b = &bucket{}
		idx.buckets[hashValue] = b
	}
	b.ids = append(b.ids, id)
}

func (idx *bucketIndex) remove(hashValue uint64, id uint64) {
	b := idx.getBucket(hashValue)
	if b == nil {
		return
	}
	for i, candidate := range b.ids {
		if candidate != id {
			continue
		}
		if len(b.ids) == 1 {
			delete(idx.buckets, hashValue)
			return
		}
		b.ids = append(b.ids[:i], b.ids[i+1:]...)
		return
	}
}

func (idx *bucketIndex) len() int {
	return len(idx.buckets)
}

func (idx *bucketIndex) reset(blockSize uint64) {
	idx.buckets = make(map[uint64]*bucket, preallocationHint(blockSize))
}
