// Package yml provides order preserving helpers over yaml.v3 nodes.
package yml

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type (
	Node yaml.Node
)

// Root returns the top-level node of a parsed document.
func (n *Node) Root() *Node {
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return (*Node)(n.Content[0])
	}
	return n
}

// Lookup returns the value of a mapping entry, nil if absent.
func (n *Node) Lookup(name string) *Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == name {
			return (*Node)(n.Content[i+1])
		}
	}
	return nil
}

// Pairs visits mapping entries in document order.
func (n *Node) Pairs(callback func(key string, node *Node) error) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping, got %s", n.Line, kindName(n.Kind))
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := (*Node)(n.Content[i])
		label, err := key.Scalar()
		if err != nil {
			return err
		}
		if err := callback(label, (*Node)(n.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}

// Scalar returns the scalar text.
func (n *Node) Scalar() (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: expected scalar, got %s", n.Line, kindName(n.Kind))
	}
	return n.Value, nil
}

// IsNull returns true for ~, null and empty plain scalars.
func (n *Node) IsNull() bool {
	return n.Kind == yaml.ScalarNode && (*yaml.Node)(n).ShortTag() == "!!null"
}

// Put appends a string entry to a mapping node.
func (n *Node) Put(key, value string) {
	if n.Kind != yaml.MappingNode { //sanity check
		panic("not a map node")
	}
	n.Content = append(n.Content, newScalar(key), newScalar(value))
}

// PutNode appends a nested entry to a mapping node.
func (n *Node) PutNode(key string, value *Node) {
	if n.Kind != yaml.MappingNode {
		panic("not a map node")
	}
	n.Content = append(n.Content, newScalar(key), (*yaml.Node)(value))
}

// NewMap creates an empty mapping node.
func NewMap() *Node {
	return &Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func newScalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
