package benchmarkRoutines

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaionaro-go/ordmap/errors"
	"github.com/xaionaro-go/ordmap/hasher"
	I "github.com/xaionaro-go/ordmap/interfaces"
)

type checkConsistencier interface {
	CheckConsistency() error
}

func checkConsistency(t *testing.T, m I.Map) {
	t.Helper()
	c, ok := m.(checkConsistencier)
	if !ok {
		return
	}
	require.NoError(t, c.CheckConsistency())
}

func expect(t *testing.T, m I.Map, key I.Key, expectedValue interface{}) {
	t.Helper()
	value, err := m.Lookup(key)
	if !assert.NoError(t, err, "key == %v; expectedValue == %v", key, expectedValue) {
		return
	}
	assert.Equal(t, expectedValue, value)
}

// DoTest runs the common scenario every I.Map implementation has to pass.
func DoTest(t *testing.T, factoryFunc mapFactoryFunc) {
	m := factoryFunc(1024)

	require.Equal(t, 0, m.Len())

	require.NoError(t, m.Set(1024*1024, 1))
	require.NoError(t, m.Set("a string", 2))

	expect(t, m, 1024*1024, 1)
	expect(t, m, "a string", 2)

	_, err := m.Lookup(3)
	require.ErrorIs(t, err, errors.NotFound)
	require.Equal(t, 2, m.Len())

	require.True(t, m.Delete(1024*1024))
	_, err = m.Lookup(1024 * 1024)
	require.ErrorIs(t, err, errors.NotFound)
	require.Equal(t, 1, m.Len())
	require.False(t, m.Delete(1024*1024))

	const last = 1024 * 4
	for i := 10; i < last; i++ {
		require.NoError(t, m.Set(i*6000, i))
	}
	require.True(t, m.Delete(60000))
	checkConsistency(t, m)

	for i := 11; i < last; i++ {
		r, err := m.Lookup(i * 6000)
		if !assert.NoError(t, err, "%v not found", i*6000) {
			continue
		}
		assert.Equal(t, i, r)
	}

	keys := m.Keys()
	require.Len(t, keys, last-11+1)
	assert.Equal(t, "a string", keys[0])
	for idx, key := range keys[1:] {
		assert.Equal(t, (idx+11)*6000, key)
	}
	checkConsistency(t, m)

	for i := 11; i < last; i++ {
		assert.True(t, m.Delete(i*6000), "cannot delete %v", i*6000)
	}
	require.Equal(t, 1, m.Len())
	checkConsistency(t, m)

	m.Clear()
	require.Equal(t, 0, m.Len())
	require.Empty(t, m.Keys())
}

// DoTestHeterogeneousKeys checks that keys of different kinds with a similar
// textual representation stay distinct entries.
func DoTestHeterogeneousKeys(t *testing.T, factoryFunc mapFactoryFunc) {
	m := factoryFunc(16)

	keys := []interface{}{1, 1.0, "1", true, nil, []int{1}, uintptr(1), &keyObject{Key: 1}}
	for i, key := range keys {
		require.NoError(t, m.Set(key, i))
	}
	require.Equal(t, len(keys), m.Len())
	for i, key := range keys {
		expect(t, m, key, i)
	}
	checkConsistency(t, m)
}

// DoTestKeyTypes round-trips a batch of generated keys of the given type.
func DoTestKeyTypes(t *testing.T, factoryFunc mapFactoryFunc, keyType string, keyAmount uint64) {
	m := factoryFunc(keyAmount)
	keys := generateKeys(keyAmount, keyType)
	for i, key := range keys {
		require.NoError(t, m.Set(key, i))
	}
	require.Equal(t, int(keyAmount), m.Len())
	for i, key := range keys {
		expect(t, m, key, i)
	}
	for i, key := range keys {
		if i%2 == 0 {
			require.True(t, m.Delete(key))
		}
	}
	require.Equal(t, int(keyAmount/2), m.Len())
	for i, key := range keys {
		require.Equal(t, i%2 != 0, m.Has(key), "key %v", key)
	}
	checkConsistency(t, m)
}

func tryHashCollisions(h hasher.Hasher, blockSize uint64, keys []interface{}) int {
	alreadyIsSet := map[uint64]bool{}

	collisions := 0
	for _, keyI := range keys {
		key, err := hasher.Classify(keyI)
		if err != nil {
			panic(err)
		}
		newHash := h.Hash(key)
		if blockSize != 0 {
			newHash %= blockSize
		}
		if alreadyIsSet[newHash] {
			collisions++
		}
		alreadyIsSet[newHash] = true
	}

	return collisions
}

// DoTestHashCollisions prints bucket collision statistics and fails only
// when full 64-bit hashes of small consecutive integers collide.
func DoTestHashCollisions(t *testing.T, h hasher.Hasher, blockSize uint32, keyAmount uint64) {
	keys := generateKeys(keyAmount/2, "int")
	keys = append(keys, generateKeys(keyAmount/2, "string")...)

	collisions := tryHashCollisions(h, uint64(blockSize), keys)
	fmt.Printf("Total collisions on random keys: collisions %v, keyAmount %v and blockSize %v:\n\t%v/%v/%v (%.1f%%)\n", collisions, keyAmount, blockSize, collisions, keyAmount, blockSize, float32(collisions)*100/float32(keyAmount))

	keys = []interface{}{}
	for i := uint64(0); i < keyAmount; i++ {
		keys = append(keys, i*uint64(blockSize)*63)
	}

	collisions = tryHashCollisions(h, uint64(blockSize), keys)
	fmt.Printf("Total collisions on keys of pessimistic scenario (keys are multiple of blockSize): collisions %v, keyAmount %v and blockSize %v:\n\t%v/%v/%v (%.1f%%)\n", collisions, keyAmount, blockSize, collisions, keyAmount, blockSize, float32(collisions)*100/float32(keyAmount))

	keys = []interface{}{}
	for i := uint64(0); i < keyAmount; i++ {
		keys = append(keys, i)
	}

	collisions = tryHashCollisions(h, uint64(blockSize), keys)
	fmt.Printf("Total collisions on keys of pessimistic scenario (keys are consecutive): collisions %v, keyAmount %v and blockSize %v:\n\t%v/%v/%v (%.1f%%)\n", collisions, keyAmount, blockSize, collisions, keyAmount, blockSize, float32(collisions)*100/float32(keyAmount))

	assert.Zero(t, tryHashCollisions(h, 0, keys), "full hashes of consecutive integers collide")
}
