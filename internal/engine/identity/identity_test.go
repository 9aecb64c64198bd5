package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/engine/identity"
	"go.trai.ch/bubbles/internal/engine/layout"
	"go.trai.ch/bubbles/internal/engine/mutator"
	"go.trai.ch/bubbles/internal/engine/tree"
)

func pn(id string, x float64) domain.PositionedNode {
	return domain.PositionedNode{ID: id, X: x}
}

func TestReconcile_Partitions(t *testing.T) {
	prev := []domain.PositionedNode{pn("root", 0), pn("a", 1), pn("b", 2)}
	next := []domain.PositionedNode{pn("root", 0), pn("c", 3), pn("a", 4)}

	d := identity.Reconcile(prev, next)

	require.Len(t, d.Entering, 1)
	assert.Equal(t, "c", d.Entering[0].ID)

	require.Len(t, d.Exiting, 1)
	assert.Equal(t, "b", d.Exiting[0].ID)

	require.Len(t, d.Updating, 2)
	assert.Equal(t, "root", d.Updating[0].Next.ID)
	assert.Equal(t, "a", d.Updating[1].Next.ID)
	assert.InDelta(t, 1.0, d.Updating[1].Prev.X, 0)
	assert.InDelta(t, 4.0, d.Updating[1].Next.X, 0)
}

func TestReconcile_KeyedByIDNotPosition(t *testing.T) {
	prev := []domain.PositionedNode{pn("a", 1), pn("b", 2)}
	next := []domain.PositionedNode{pn("b", 2), pn("a", 1)}

	d := identity.Reconcile(prev, next)

	assert.Empty(t, d.Entering)
	assert.Empty(t, d.Exiting)
	require.Len(t, d.Updating, 2)
	assert.Equal(t, "b", d.Updating[0].Prev.ID)
}

func TestReconcile_Empty(t *testing.T) {
	d := identity.Reconcile(nil, []domain.PositionedNode{pn("root", 0)})
	assert.Len(t, d.Entering, 1)

	d = identity.Reconcile([]domain.PositionedNode{pn("root", 0)}, nil)
	assert.Len(t, d.Exiting, 1)
}

func TestReconcile_StableAcrossMove(t *testing.T) {
	tr, _ := tree.Build([]domain.Row{
		{NodeID: "g1", ParentID: "0", Title: "g1", Weight: 0},
		{NodeID: "g2", ParentID: "0", Title: "g2", Weight: 0},
		{NodeID: "l1", ParentID: "g1", Title: "l1", Weight: 4},
		{NodeID: "l2", ParentID: "g1", Title: "l2", Weight: 2},
		{NodeID: "l3", ParentID: "g2", Title: "l3", Weight: 1},
	})
	before := layout.Pack(tr, 800, layout.DefaultOptions())

	l1, _ := tr.Node("l1")
	g2, _ := tr.Node("g2")
	_, ok := mutator.Move(tr, l1, g2)
	require.True(t, ok)
	after := layout.Pack(tr, 800, layout.DefaultOptions())

	d := identity.Reconcile(before, after)

	assert.Empty(t, d.Entering)
	assert.Empty(t, d.Exiting)
	assert.Len(t, d.Updating, len(before))
	for _, p := range d.Updating {
		assert.Equal(t, p.Prev.ID, p.Next.ID)
	}
}
