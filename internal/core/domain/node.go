// Package domain contains the core domain models for the topic bubble tree.
package domain

import "strings"

// Kind tags a Node as a leaf or a group.
type Kind uint8

const (
	// KindLeaf is a weighted topic with no children.
	KindLeaf Kind = iota + 1
	// KindGroup is a cluster of topics. A group may have zero children.
	KindGroup
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Node is a vertex of the topic tree.
// Leaves carry a weight. Groups carry an ordered list of children and derive
// their size from the leaves beneath them.
type Node struct {
	ID     string
	Terms  []string
	Kind   Kind
	Weight float64

	children []*Node
	parent   *Node
}

// NewLeaf creates a detached leaf node.
func NewLeaf(id string, terms []string, weight float64) *Node {
	return &Node{
		ID:     id,
		Terms:  terms,
		Kind:   KindLeaf,
		Weight: weight,
	}
}

// NewGroup creates a detached group node with no children.
func NewGroup(id string, terms []string) *Node {
	return &Node{
		ID:       id,
		Terms:    terms,
		Kind:     KindGroup,
		children: []*Node{},
	}
}

// IsLeaf reports whether the node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Kind == KindLeaf
}

// IsGroup reports whether the node is a group.
func (n *Node) IsGroup() bool {
	return n.Kind == KindGroup
}

// Children returns the ordered children of a group. The slice is owned by the
// node and must not be modified. Leaves return nil.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the node's parent, or nil for the root and detached nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Label joins the node's terms with single spaces.
func (n *Node) Label() string {
	return strings.Join(n.Terms, " ")
}

// Value is the sum of leaf weights in the node's subtree.
func (n *Node) Value() float64 {
	if n.IsLeaf() {
		return n.Weight
	}
	var sum float64
	for _, c := range n.children {
		sum += c.Value()
	}
	return sum
}

// SplitTerms splits a title into terms on single spaces.
func SplitTerms(title string) []string {
	return strings.Split(title, " ")
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}
