package ordmap

import (
	"testing"

	benchmark "github.com/xaionaro-go/ordmap/internal/benchmarkRoutines"
	"github.com/xaionaro-go/ordmap/internal/factoriesOfOtherImplementations/cornelkHashmap"
	"github.com/xaionaro-go/ordmap/internal/factoriesOfOtherImplementations/linearMap"
	I "github.com/xaionaro-go/ordmap/interfaces"
)

const (
	benchBlockSize = 1024
	benchKeyAmount = 1024
)

func linearFactory(blockSize uint64) I.Map {
	return linearMap.NewWithArgs(blockSize)
}

func cornelkFactory(blockSize uint64) I.Map {
	return cornelkHashmap.NewWithArgs(blockSize)
}

func getRef(m I.Map, key I.Key, write bool) error {
	ref, err := m.(*Map).Get(key)
	if err != nil {
		return err
	}
	if !write {
		return nil
	}
	counter, _ := ref.Load().(int)
	return ref.Store(counter + 1)
}

var benchKeyTypes = []string{"int", "float", "string", "longString", "slice", "struct", "object"}

func BenchmarkSet(b *testing.B) {
	for _, keyType := range benchKeyTypes {
		b.Run(keyType, func(b *testing.B) {
			benchmark.DoBenchmarkOfSet(b, factory, benchBlockSize, benchKeyAmount, keyType)
		})
	}
}

func BenchmarkReSet(b *testing.B) {
	for _, keyType := range benchKeyTypes {
		b.Run(keyType, func(b *testing.B) {
			benchmark.DoBenchmarkOfReSet(b, factory, benchBlockSize, benchKeyAmount, keyType)
		})
	}
}

func BenchmarkGet(b *testing.B) {
	for _, keyType := range benchKeyTypes {
		b.Run(keyType, func(b *testing.B) {
			benchmark.DoBenchmarkOfGet(b, factory, benchBlockSize, benchKeyAmount, keyType)
		})
	}
}

func BenchmarkGetMiss(b *testing.B) {
	for _, keyType := range benchKeyTypes {
		b.Run(keyType, func(b *testing.B) {
			benchmark.DoBenchmarkOfGetMiss(b, factory, benchBlockSize, keyType)
		})
	}
}

func BenchmarkDelete(b *testing.B) {
	for _, keyType := range benchKeyTypes {
		b.Run(keyType, func(b *testing.B) {
			benchmark.DoBenchmarkOfDelete(b, factory, benchBlockSize, benchKeyAmount, keyType)
		})
	}
}

func BenchmarkGet_linearMap(b *testing.B) {
	benchmark.DoBenchmarkOfGet(b, linearFactory, benchBlockSize, benchKeyAmount, "int")
}

func BenchmarkSet_linearMap(b *testing.B) {
	benchmark.DoBenchmarkOfSet(b, linearFactory, benchBlockSize, benchKeyAmount, "int")
}

func BenchmarkSet_cornelkHashmap(b *testing.B) {
	benchmark.DoBenchmarkOfSet(b, cornelkFactory, benchBlockSize, benchKeyAmount, "int")
}

func BenchmarkGet_cornelkHashmap(b *testing.B) {
	benchmark.DoBenchmarkOfGet(b, cornelkFactory, benchBlockSize, benchKeyAmount, "int")
}

func BenchmarkDelete_cornelkHashmap(b *testing.B) {
	benchmark.DoBenchmarkOfDelete(b, cornelkFactory, benchBlockSize, benchKeyAmount, "int")
}

func BenchmarkGetRef(b *testing.B) {
	for _, keyType := range benchKeyTypes {
		b.Run(keyType+"/write", func(b *testing.B) {
			benchmark.DoBenchmarkOfGetRef(b, factory, getRef, benchBlockSize, benchKeyAmount, keyType, true)
		})
		b.Run(keyType+"/discard", func(b *testing.B) {
			benchmark.DoBenchmarkOfGetRef(b, factory, getRef, benchBlockSize, benchKeyAmount, keyType, false)
		})
	}
}
