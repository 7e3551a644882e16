package ordered

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_InsertionOrder(t *testing.T) {
	m := New[string, int](0)
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	assert.Equal(t, []int{3, 1, 2}, m.Values())
	assert.Equal(t, "{c=3, a=1, b=2}", m.String())
}

func TestMap_OverwriteKeepsPosition(t *testing.T) {
	m := Of(Pair[string, int]{"x", 1}, Pair[string, int]{"y", 2})
	m.Set("x", 10)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"x", "y"}, m.Keys())
	v, ok := m.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestMap_ZeroValue(t *testing.T) {
	var m Map[int, string]
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has(1))
	assert.Equal(t, "{}", m.String())

	m.Set(1, "one")
	assert.True(t, m.Has(1))
	assert.Equal(t, []Pair[int, string]{{Key: 1, Value: "one"}}, m.Pairs())
}

func TestMap_Nil(t *testing.T) {
	var m *Map[int, string]
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	_, ok := m.Get(1)
	assert.False(t, ok)
	for range m.All() {
		t.Fatal("nil map must not yield")
	}
}

func TestMap_AllStopsEarly(t *testing.T) {
	m := Of(Pair[int, int]{1, 1}, Pair[int, int]{2, 2}, Pair[int, int]{3, 3})
	var visited []int
	for k := range m.All() {
		visited = append(visited, k)
		if k == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, visited)
}
