package interfaces

type Key interface{}

// Map is the contract shared by ordmap.Map and the implementations it is
// compared against in tests and benchmarks.
type Map interface {
	Set(key Key, value interface{}) error
	Lookup(key Key) (value interface{}, err error)
	Has(key Key) bool
	Delete(key Key) bool
	Len() int
	Clear()
	Keys() []interface{}
}
