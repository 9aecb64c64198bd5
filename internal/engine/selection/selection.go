// Package selection implements the click state machine that picks a node to
// move and the group to move it into.
package selection

import (
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/engine/mutator"
)

// Outcome is what a single click did.
type Outcome uint8

const (
	// Ignored means the click targeted the root.
	Ignored Outcome = iota
	// Selected means a source was picked from idle.
	Selected
	// Deselected means the source was clicked again.
	Deselected
	// Reselected means the click replaced the source instead of moving it.
	Reselected
	// Moved means the source was moved into the clicked group.
	Moved
	// Unchanged means the move would not change the tree. The selection is
	// cleared anyway.
	Unchanged
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case Reselected:
		return "reselected"
	case Moved:
		return "moved"
	case Unchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Controller holds the current source selection. The zero value is idle.
type Controller struct {
	source *domain.Node
}

// Source returns the selected node, or nil when idle.
func (c *Controller) Source() *domain.Node {
	return c.source
}

// Idle reports whether no source is selected.
func (c *Controller) Idle() bool {
	return c.source == nil
}

// Reset returns the controller to idle.
func (c *Controller) Reset() {
	c.source = nil
}

// Click applies a single click on n. When the click completes a move, the
// tree is mutated and the move result is returned.
func (c *Controller) Click(t *domain.Tree, n *domain.Node) (Outcome, mutator.Result) {
	switch {
	case n == t.Root():
		return Ignored, mutator.Result{}
	case c.source == nil:
		c.source = n
		return Selected, mutator.Result{}
	case c.source.ID == n.ID:
		c.source = nil
		return Deselected, mutator.Result{}
	case n.IsLeaf() || t.Depth(c.source) < t.Depth(n):
		c.source = n
		return Reselected, mutator.Result{}
	}

	source := c.source
	c.source = nil
	res, ok := mutator.Move(t, source, n)
	if !ok {
		return Unchanged, mutator.Result{}
	}
	return Moved, res
}

// Rebind points the selection at the node with the same id in t, or clears
// it when t no longer has that node.
func (c *Controller) Rebind(t *domain.Tree) {
	if c.source == nil {
		return
	}
	if n, ok := t.Node(c.source.ID); ok && n != t.Root() {
		c.source = n
		return
	}
	c.source = nil
}
