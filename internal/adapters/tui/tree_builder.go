package tui

import "go.trai.ch/bubbles/internal/core/domain"

// Row is one visible line of the outline.
type Row struct {
	ID      string
	Label   string
	Depth   int
	Leaf    bool
	Members int
	Weight  float64
	// Open is set for groups whose children are listed below them.
	Open bool
}

// buildRows flattens the tree below the root in pre-order, skipping the
// children of collapsed groups.
func buildRows(t *domain.Tree, collapsed map[string]bool) []Row {
	if t == nil {
		return nil
	}

	rows := make([]Row, 0, t.Len()-1)
	var walk func(n *domain.Node, depth int)
	walk = func(n *domain.Node, depth int) {
		for _, c := range n.Children() {
			open := c.IsGroup() && !collapsed[c.ID]
			rows = append(rows, Row{
				ID:      c.ID,
				Label:   c.Label(),
				Depth:   depth,
				Leaf:    c.IsLeaf(),
				Members: len(c.Children()),
				Weight:  c.Value(),
				Open:    open,
			})
			if open {
				walk(c, depth+1)
			}
		}
	}
	walk(t.Root(), 1)
	return rows
}
