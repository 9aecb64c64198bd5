// Package tree turns flat input rows into a rooted topic tree.
package tree

import (
	"math"

	"go.trai.ch/bubbles/internal/core/domain"
)

// DropReason explains why a row was left out of the tree.
type DropReason string

const (
	// DropUnknownParent marks a row whose parent was not found when the row was read.
	DropUnknownParent DropReason = "unknown parent"
	// DropLeafParent marks a row whose parent is a weighted leaf.
	DropLeafParent DropReason = "parent is a leaf"
	// DropDuplicateID marks a row reusing an id already in the tree.
	DropDuplicateID DropReason = "duplicate id"
	// DropReservedID marks a row using the root id.
	DropReservedID DropReason = "reserved id"
	// DropInvalidWeight marks a row with a negative or NaN weight.
	DropInvalidWeight DropReason = "invalid weight"
)

// Dropped is a row the builder skipped.
type Dropped struct {
	Row    domain.Row
	Reason DropReason
}

// Report summarizes a build.
type Report struct {
	Added   int
	Dropped []Dropped
}

// Build converts rows into a tree. Rows are read in order, so a row naming a
// parent that appears later is dropped. A row with weight 0 becomes a group
// and any other row becomes a leaf. Malformed rows are skipped and listed in
// the report.
func Build(rows []domain.Row) (*domain.Tree, Report) {
	t := domain.NewTree()
	var rep Report

	drop := func(r domain.Row, reason DropReason) {
		rep.Dropped = append(rep.Dropped, Dropped{Row: r, Reason: reason})
	}

	for _, r := range rows {
		if r.NodeID == domain.RootID {
			drop(r, DropReservedID)
			continue
		}
		if math.IsNaN(r.Weight) || r.Weight < 0 {
			drop(r, DropInvalidWeight)
			continue
		}
		if _, exists := t.Node(r.NodeID); exists {
			drop(r, DropDuplicateID)
			continue
		}

		parent, ok := t.Node(parentKey(r.ParentID))
		if !ok {
			drop(r, DropUnknownParent)
			continue
		}
		if !parent.IsGroup() {
			drop(r, DropLeafParent)
			continue
		}

		var n *domain.Node
		if r.Weight == 0 {
			n = domain.NewGroup(r.NodeID, domain.SplitTerms(r.Title))
		} else {
			n = domain.NewLeaf(r.NodeID, domain.SplitTerms(r.Title), r.Weight)
		}
		if err := t.Append(parent, n); err != nil {
			drop(r, DropDuplicateID)
			continue
		}
		rep.Added++
	}

	return t, rep
}

func parentKey(id string) string {
	if id == domain.RootAlias {
		return domain.RootID
	}
	return id
}
