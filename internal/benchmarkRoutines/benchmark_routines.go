package benchmarkRoutines

import (
	"testing"

	"github.com/xaionaro-go/ordmap/hasher"
	I "github.com/xaionaro-go/ordmap/interfaces"
)

func DoBenchmarkOfSet(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)

	keys := generateKeys(keyAmount, keyType)

	currentCount := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Set(keys[currentCount], i)
		currentCount++
		if currentCount >= keyAmount {
			b.StopTimer()
			m = factoryFunc(blockSize)
			currentCount = 0
			b.StartTimer()
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfReSet(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)

	keys := generateKeys(keyAmount, keyType)
	for i := uint64(0); i < keyAmount; i++ {
		m.Set(keys[i], i+1)
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Set(keys[currentIdx], i)
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGet(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)

	keys := generateKeys(keyAmount, keyType)
	for i := uint64(0); i < keyAmount; i++ {
		m.Set(keys[i], i)
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Lookup(keys[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGetMiss(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)

	keys := generateKeys(uint64(b.N), keyType)

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Lookup(keys[i])
	}
	b.StopTimer()
}

func DoBenchmarkOfDelete(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)
	keys := generateKeys(keyAmount, keyType)

	currentIdx := uint64(0)
	for i := 0; i < b.N; i++ {
		if currentIdx == 0 {
			b.StopTimer()
			for j := uint64(0); j < keyAmount; j++ {
				m.Set(keys[j], j)
			}
			b.StartTimer()
		}

		m.Delete(keys[currentIdx])

		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkHash(b *testing.B, h hasher.Hasher, keyType string) {
	b.StopTimer()
	rawKeys := generateKeys(1024, keyType)
	keys := make([]hasher.Key, len(rawKeys))
	for i, rawKey := range rawKeys {
		key, err := hasher.Classify(rawKey)
		if err != nil {
			b.Fatal(err)
		}
		keys[i] = key
	}

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		h.Hash(keys[i&1023])
	}
	b.StopTimer()
}

// RefGetter resolves the key through the map's reference API and, if
// write is set, writes through the reference.
type RefGetter func(m I.Map, key I.Key, write bool) error

// DoBenchmarkOfGetRef measures reference lookups where every other key is
// absent, so half the lookups arm a pending slot. With write set the
// absent keys are created through the reference, otherwise the pending
// slots are discarded by the next lookup.
func DoBenchmarkOfGetRef(b *testing.B, factoryFunc mapFactoryFunc, getRef RefGetter, blockSize uint64, keyAmount uint64, keyType string, write bool) {
	b.StopTimer()

	keys := generateKeys(keyAmount, keyType)
	fill := func() I.Map {
		m := factoryFunc(blockSize)
		for i := uint64(0); i < keyAmount; i += 2 {
			m.Set(keys[i], i)
		}
		return m
	}
	m := fill()

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		if err := getRef(m, keys[currentIdx], write); err != nil {
			b.Fatal(err)
		}
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
			if write {
				b.StopTimer()
				m = fill()
				b.StartTimer()
			}
		}
	}
	b.StopTimer()
}
