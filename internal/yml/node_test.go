package yml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func decode(t *testing.T, text string) *Node {
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(text), &node))
	return (*Node)(&node).Root()
}

func TestNode_PairsOrder(t *testing.T) {
	root := decode(t, "entries:\n  z: 1\n  a: 2\n  m: 3\n")
	var keys, values []string
	err := root.Lookup("entries").Pairs(func(key string, node *Node) error {
		value, err := node.Scalar()
		keys = append(keys, key)
		values = append(values, value)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, keys)
	assert.Equal(t, []string{"1", "2", "3"}, values)
}

func TestNode_Errors(t *testing.T) {
	root := decode(t, "entries:\n  - a\n  - b\n")
	assert.Nil(t, root.Lookup("missing"))
	err := root.Lookup("entries").Pairs(func(string, *Node) error { return nil })
	assert.EqualError(t, err, "line 2: expected mapping, got sequence")

	_, err = root.Scalar()
	assert.Error(t, err)
}

func TestNode_Put(t *testing.T) {
	entries := NewMap()
	entries.Put("red", "RED")
	entries.Put("green", "GREEN")
	root := NewMap()
	root.PutNode("entries", entries)

	data, err := yaml.Marshal((*yaml.Node)(root))
	require.NoError(t, err)
	assert.Equal(t, "entries:\n    red: RED\n    green: GREEN\n", string(data))
}
