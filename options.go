package ordmap

import (
	"github.com/xaionaro-go/ordmap/hasher"
)

const (
	defaultBlockSize = 16
	maximalBlockSize = 1 << 32
)

type options struct {
	blockSize uint64
	hasher    hasher.Hasher
	logger    *Logger
	validator *validator
}

// Option configures a Map.
type Option func(*options)

// WithBlockSize sets the expected amount of entries. The storage is
// preallocated for it, the value is rounded up to a power of 2.
func WithBlockSize(blockSize uint64) Option {
	return func(o *options) {
		o.blockSize = blockSize
	}
}

// WithHasher replaces the key hasher. If nil is passed, hasher.New() is used.
func WithHasher(h hasher.Hasher) Option {
	return func(o *options) {
		if h == nil {
			h = hasher.New()
		}
		o.hasher = h
	}
}

// WithLogger enables debug logging of pending slot resolution and resets.
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func withValidator(v *validator) Option {
	return func(o *options) {
		o.validator = v
	}
}

func powerOfTwoGT(v uint64) uint64 {
	shiftedV := v
	for (v+1)^v < (v + 1) {
		shiftedV >>= 1
		v |= shiftedV
	}
	v++
	return v
}

func isPowerOfTwo(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}

func powerOfTwoGE(v uint64) uint64 {
	if isPowerOfTwo(v) {
		return v
	}
	return powerOfTwoGT(v)
}

// fixBlockSize fixes blockSize value to be a power of 2 within limits.
func fixBlockSize(blockSize uint64, logger *Logger) uint64 {
	if blockSize == 0 {
		return defaultBlockSize
	}

	if blockSize > maximalBlockSize {
		logger.Warn("block size is too big", "block_size", blockSize, "fixed", uint64(maximalBlockSize))
		return maximalBlockSize
	}

	if !isPowerOfTwo(blockSize) {
		fixed := powerOfTwoGE(blockSize)
		logger.Debug("block size should be a power of 2", "block_size", blockSize, "fixed", fixed)
		blockSize = fixed
	}

	return blockSize
}
