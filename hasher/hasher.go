package hasher

// Hasher maps classified keys to bucket ids and decides key equality.
type Hasher interface {
	Hash(key Key) uint64
	Equal(keyA, keyB Key) bool
}

type hasher struct{}

func New() Hasher {
	return &hasher{}
}

func (h *hasher) Hash(key Key) uint64 {
	return hash(key)
}

func (h *hasher) Equal(keyA, keyB Key) bool {
	return IsEqualKey(keyA, keyB)
}
