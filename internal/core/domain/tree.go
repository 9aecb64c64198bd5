package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Tree is a rooted topic tree with an id index.
// Every node reachable from the root is indexed and every indexed node is
// reachable, except while a node is detached between Detach and Append.
type Tree struct {
	root  *Node
	index map[string]*Node
}

// NewTree creates a tree containing only the root group.
func NewTree() *Tree {
	root := NewGroup(RootID, []string{})
	return &Tree{
		root:  root,
		index: map[string]*Node{RootID: root},
	}
}

// Root returns the root group.
func (t *Tree) Root() *Node {
	return t.root
}

// Node looks up a node by id.
func (t *Tree) Node(id string) (*Node, bool) {
	n, ok := t.index[id]
	return n, ok
}

// Len returns the number of indexed nodes, root included.
func (t *Tree) Len() int {
	return len(t.index)
}

// Clusters returns the number of top-level clusters under the root.
func (t *Tree) Clusters() int {
	return len(t.root.children)
}

// Depth returns the number of edges between n and the root.
func (t *Tree) Depth(n *Node) int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Append attaches a detached node as the last child of parent.
// A node that is new to the tree is indexed along with its subtree.
func (t *Tree) Append(parent, child *Node) error {
	if !parent.IsGroup() {
		return zerr.With(ErrParentNotGroup, "parent_id", parent.ID)
	}
	if t.index[parent.ID] != parent {
		return zerr.With(ErrNodeNotFound, "node_id", parent.ID)
	}
	if child.parent != nil || child == t.root {
		return zerr.With(ErrNodeAttached, "node_id", child.ID)
	}
	if existing, ok := t.index[child.ID]; ok && existing != child {
		return zerr.With(ErrDuplicateNode, "node_id", child.ID)
	}
	for p := parent; p != nil; p = p.parent {
		if p == child {
			return zerr.With(ErrTreeInvariant, "cycle_at", child.ID)
		}
	}

	child.parent = parent
	parent.children = append(parent.children, child)
	t.indexSubtree(child)
	return nil
}

// Detach unlinks n from its parent but keeps it indexed so it can be
// re-attached with Append.
func (t *Tree) Detach(n *Node) {
	p := n.parent
	if p == nil {
		return
	}
	if i := p.indexOf(n); i >= 0 {
		p.children = append(p.children[:i:i], p.children[i+1:]...)
	}
	n.parent = nil
}

// Remove unlinks n and drops it and its subtree from the index.
func (t *Tree) Remove(n *Node) {
	if n == t.root {
		return
	}
	t.Detach(n)
	for d := range walk(n, 0) {
		delete(t.index, d.Node.ID)
	}
}

// ClearChildren detaches every child of a group and returns them in order.
// The returned nodes stay indexed.
func (t *Tree) ClearChildren(g *Node) []*Node {
	out := g.children
	for _, c := range out {
		c.parent = nil
	}
	if g.IsGroup() {
		g.children = []*Node{}
	}
	return out
}

// Visit pairs a node with its depth during a walk.
type Visit struct {
	Node  *Node
	Depth int
}

// Walk yields every node in depth-first pre-order, starting at the root.
func (t *Tree) Walk() iter.Seq[Visit] {
	return walk(t.root, 0)
}

func walk(n *Node, depth int) iter.Seq[Visit] {
	return func(yield func(Visit) bool) {
		var visit func(n *Node, depth int) bool
		visit = func(n *Node, depth int) bool {
			if !yield(Visit{Node: n, Depth: depth}) {
				return false
			}
			for _, c := range n.children {
				if !visit(c, depth+1) {
					return false
				}
			}
			return true
		}
		visit(n, depth)
	}
}

// LeafWeight is the sum of all leaf weights in the tree.
func (t *Tree) LeafWeight() float64 {
	return t.root.Value()
}

// Validate checks the structural invariants of the tree: a single parentless
// root, parent links matching child lists, no node reachable twice, leaves
// without children and a one-to-one index.
func (t *Tree) Validate() error {
	if t.root.parent != nil || t.root.ID != RootID || !t.root.IsGroup() {
		return zerr.With(ErrTreeInvariant, "reason", "malformed root")
	}

	seen := make(map[*Node]struct{}, len(t.index))
	var check func(n *Node) error
	check = func(n *Node) error {
		if _, dup := seen[n]; dup {
			return zerr.With(zerr.With(ErrTreeInvariant, "reason", "node reachable twice"), "node_id", n.ID)
		}
		seen[n] = struct{}{}
		if t.index[n.ID] != n {
			return zerr.With(zerr.With(ErrTreeInvariant, "reason", "node missing from index"), "node_id", n.ID)
		}
		if n.IsLeaf() && len(n.children) > 0 {
			return zerr.With(zerr.With(ErrTreeInvariant, "reason", "leaf with children"), "node_id", n.ID)
		}
		for _, c := range n.children {
			if c.parent != n {
				return zerr.With(zerr.With(ErrTreeInvariant, "reason", "parent link mismatch"), "node_id", c.ID)
			}
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(t.root); err != nil {
		return err
	}

	if len(seen) != len(t.index) {
		return zerr.With(ErrTreeInvariant, "reason", "orphaned nodes in index")
	}
	return nil
}

// Assignments lists every child:parent pair in pre-order.
// Direct children of the root report RootAssignmentID as their parent.
func (t *Tree) Assignments() []Assignment {
	out := make([]Assignment, 0, len(t.index)-1)
	for v := range t.Walk() {
		n := v.Node
		if n == t.root {
			continue
		}
		parent := n.parent.ID
		if n.parent == t.root {
			parent = RootAssignmentID
		}
		out = append(out, Assignment{ChildID: n.ID, ParentID: parent})
	}
	return out
}

func (t *Tree) indexSubtree(n *Node) {
	for v := range walk(n, 0) {
		t.index[v.Node.ID] = v.Node
	}
}
