// Package mutator relocates nodes inside a topic tree.
package mutator

import (
	"go.trai.ch/bubbles/internal/core/domain"
)

// Result describes a completed move.
type Result struct {
	// Moved lists the ids that changed parent, in their new order.
	Moved []string
	// Removed is the id of a group absorbed by the move, if any.
	Removed string
	// From is the id of the parent the nodes left.
	From string
	// To is the id of the destination group.
	To string
}

// Meaningful reports whether moving source into dest would change the tree.
// A move is meaningful when dest is not source's current parent, or when
// source is a group with more than one child (flattening it into its own
// parent).
func Meaningful(source, dest *domain.Node) bool {
	return source.Parent() != dest || len(source.Children()) > 1
}

// Move relocates source into dest and reports whether anything changed.
// A leaf is detached from its parent and appended to dest. A group hands its
// children to dest in order and is then removed from its own parent.
// The root, a leaf destination and a destination inside source are rejected.
func Move(t *domain.Tree, source, dest *domain.Node) (Result, bool) {
	if source == t.Root() || source.Parent() == nil || !dest.IsGroup() || source == dest {
		return Result{}, false
	}
	for p := dest; p != nil; p = p.Parent() {
		if p == source {
			return Result{}, false
		}
	}
	if !Meaningful(source, dest) {
		return Result{}, false
	}

	if source.IsLeaf() {
		res := Result{Moved: []string{source.ID}, From: source.Parent().ID, To: dest.ID}
		t.Detach(source)
		if err := t.Append(dest, source); err != nil {
			return Result{}, false
		}
		return res, true
	}

	res := Result{Removed: source.ID, From: source.ID, To: dest.ID}
	for _, c := range t.ClearChildren(source) {
		if err := t.Append(dest, c); err != nil {
			return Result{}, false
		}
		res.Moved = append(res.Moved, c.ID)
	}
	t.Remove(source)
	return res, true
}
