// Package identity matches positioned nodes across layout passes by node id.
package identity

import "go.trai.ch/bubbles/internal/core/domain"

// Pair is a node present in both passes.
type Pair struct {
	Prev domain.PositionedNode
	Next domain.PositionedNode
}

// Diff partitions two layout passes.
// Entering and Updating follow the order of the next pass, Exiting follows
// the order of the previous pass.
type Diff struct {
	Entering []domain.PositionedNode
	Updating []Pair
	Exiting  []domain.PositionedNode
}

// Reconcile keys both passes on node id and splits them into entering,
// updating and exiting nodes.
func Reconcile(prev, next []domain.PositionedNode) Diff {
	before := Index(prev)
	after := Index(next)

	var d Diff
	for _, n := range next {
		if p, ok := before[n.ID]; ok {
			d.Updating = append(d.Updating, Pair{Prev: p, Next: n})
		} else {
			d.Entering = append(d.Entering, n)
		}
	}
	for _, p := range prev {
		if _, ok := after[p.ID]; !ok {
			d.Exiting = append(d.Exiting, p)
		}
	}
	return d
}

// Index maps node ids to their positioned nodes.
func Index(nodes []domain.PositionedNode) map[string]domain.PositionedNode {
	m := make(map[string]domain.PositionedNode, len(nodes))
	for _, n := range nodes {
		m[n.ID] = n
	}
	return m
}
