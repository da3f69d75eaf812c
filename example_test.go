package ordmap_test

import (
	"fmt"

	"github.com/xaionaro-go/ordmap"
)

func Example() {
	m := ordmap.New()
	_ = m.Set("b", 1)
	_ = m.Set(2, "two")
	_ = m.Set([]int{1, 2}, "slice key")
	_ = m.Set(1.5, nil)
	m.Delete("b")
	_ = m.Set("b", 3)

	for key, value := range m.All() {
		fmt.Printf("%v => %v\n", key, value)
	}
	fmt.Println(m)
	// Output:
	// 2 => two
	// [1 2] => slice key
	// 1.5 => <nil>
	// b => 3
	// Map(len=4)
}

func ExampleMap_Get() {
	m := ordmap.New()

	// Appending to an absent key creates it.
	ref, _ := m.Get("users")
	list, _ := ref.Load().([]string)
	_ = ref.Store(append(list, "alice"))

	// A reference that is never written leaves the map unchanged.
	_, _ = m.Get("probe")

	fmt.Println(m.Keys())
	// Output: [users]
}

func ExampleNewValidated() {
	m := ordmap.NewValidated(ordmap.MustParseType("int"), ordmap.MustParseType("string|null"))
	fmt.Println(m.Set(1, "one"))
	fmt.Println(m.Set(2, 2.5))
	// Output:
	// <nil>
	// Map<int, string|null> expected value of type 'string|null', got float64
}
