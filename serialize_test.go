package ordmap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	m := New()
	require.NoError(t, m.Set("b", 1))
	require.NoError(t, m.Set(2, "two"))
	require.NoError(t, m.Set([]int{3}, nil))
	require.True(t, m.Delete("b"))
	require.NoError(t, m.Set("b", true))

	assert.Equal(t, []Entry{
		{Key: 2, Value: "two"},
		{Key: []int{3}, Value: nil},
		{Key: "b", Value: true},
	}, m.Serialize())
}

func TestMarshalJSON(t *testing.T) {
	type object struct {
		Name string `json:"name"`
	}

	m := New()
	require.NoError(t, m.Set(&object{Name: "x"}, "A"))
	require.NoError(t, m.Set(1.5, []int{1, 2}))
	require.NoError(t, m.Set(nil, "Z"))

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"key": {"name": "x"}, "value": "A"},
		{"key": 1.5, "value": [1, 2]},
		{"key": null, "value": "Z"}
	]`, string(b))

	b, err = m.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":{"name":"x"},"value":"A"},{"key":1.5,"value":[1,2]},{"key":null,"value":"Z"}]`, string(b))
}

func TestMarshalJSON_empty(t *testing.T) {
	b, err := New().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}
