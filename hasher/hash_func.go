package hasher

import (
	"math"
	"math/bits"

	"github.com/OneOfOne/xxhash"
)

const (
	randomNumber           = uint64(4735311918715544114)
	knuthsMultiplicative64 = 1442695040888963407

	// Text up to this length is pre-hashed verbatim, longer text goes
	// through a digest.
	maxVerbatimTextLength = 8

	kindShift = 60
	sumMask   = uint64(1)<<kindShift - 1
)

func preHashString(in string) (uint64, bool) {
	if len(in) <= maxVerbatimTextLength {
		v := uint64(0)
		for i := 0; i < len(in); i++ {
			v += uint64(in[i]) << (uint(i) << 3)
		}
		return v, true
	}
	return xxhash.ChecksumString64(in), false
}

func preHashFloat(in float64) uint64 {
	if in == 0 { // -0 == +0
		return 0
	}
	return math.Float64bits(in)
}

// preHash returns the kind-local hash of the key and whether it fully
// represents the key value.
func preHash(keyI Key) (value uint64, isFull bool) {
	switch key := keyI.(type) {
	case Null:
		return 0, true
	case Int:
		return uint64(key), true
	case Float:
		return preHashFloat(float64(key)), true
	case Bool:
		if key {
			return 1, true
		}
		return 0, true
	case Text:
		return preHashString(string(key))
	case Handle:
		return uint64(key), true
	case Object:
		return uint64(key.addr), false
	case Composite:
		return xxhash.Checksum64(key.canon), false
	}
	panic("unknown key kind")
}

// CompleteHash mixes a pre-hash with its kind. The kind occupies the top
// bits of the result, so keys of different kinds never share a bucket.
func CompleteHash(keyPreHash uint64, kind Kind) uint64 {
	typeXorer := bits.RotateLeft64(randomNumber, int(kind))
	fullHash := (keyPreHash ^ typeXorer) * knuthsMultiplicative64
	fullHash ^= fullHash >> 29
	return fullHash&sumMask | uint64(kind)<<kindShift
}

// KindOfHash extracts the key kind stored in a complete hash.
func KindOfHash(hashValue uint64) Kind {
	return Kind(hashValue >> kindShift)
}

func hash(key Key) uint64 {
	preHashValue, _ := preHash(key)
	return CompleteHash(preHashValue, key.Kind())
}
