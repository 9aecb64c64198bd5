package layout_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/engine/layout"
	"go.trai.ch/bubbles/internal/engine/tree"
	"pgregory.net/rapid"
)

func byID(nodes []domain.PositionedNode) map[string]domain.PositionedNode {
	m := make(map[string]domain.PositionedNode, len(nodes))
	for _, n := range nodes {
		m[n.ID] = n
	}
	return m
}

func TestPack_TwoLeaves(t *testing.T) {
	tr, _ := tree.Build([]domain.Row{
		{NodeID: "light", ParentID: "0", Title: "light", Weight: 1},
		{NodeID: "heavy", ParentID: "0", Title: "heavy", Weight: 1},
	})

	nodes := layout.Pack(tr, 130, layout.DefaultOptions())

	require.Len(t, nodes, 3)
	root := nodes[0]
	assert.Equal(t, "root", root.ID)
	assert.InDelta(t, 50, root.X, 1e-9)
	assert.InDelta(t, 50, root.Y, 1e-9)
	assert.InDelta(t, 50, root.R, 1e-9)
	assert.InDelta(t, 2, root.Value, 0)

	// Equal values keep tree order.
	assert.Equal(t, "light", nodes[1].ID)
	assert.Equal(t, "heavy", nodes[2].ID)
	assert.InDelta(t, 28.125, nodes[1].X, 1e-9)
	assert.InDelta(t, 71.875, nodes[2].X, 1e-9)
	assert.InDelta(t, 15.625, nodes[1].R, 1e-9)
	assert.InDelta(t, 15.625, nodes[2].R, 1e-9)
	assert.InDelta(t, 50, nodes[1].Y, 1e-9)
}

func TestPack_SortsByDescendingValue(t *testing.T) {
	tr, _ := tree.Build([]domain.Row{
		{NodeID: "a", ParentID: "0", Title: "a", Weight: 1},
		{NodeID: "b", ParentID: "0", Title: "b", Weight: 9},
		{NodeID: "c", ParentID: "0", Title: "c", Weight: 4},
	})

	nodes := layout.Pack(tr, 400, layout.DefaultOptions())

	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"root", "b", "c", "a"}, ids)

	// The tree itself keeps input order.
	assert.Equal(t, "a", tr.Root().Children()[0].ID)
}

func TestPack_SingleLeaf(t *testing.T) {
	tr, _ := tree.Build([]domain.Row{{NodeID: "only", ParentID: "0", Title: "only", Weight: 1}})

	nodes := layout.Pack(tr, 130, layout.DefaultOptions())

	require.Len(t, nodes, 2)
	leaf := nodes[1]
	assert.InDelta(t, 50, leaf.X, 1e-9)
	assert.InDelta(t, 50, leaf.Y, 1e-9)
	assert.InDelta(t, 100/2.8, leaf.R, 1e-9)
}

func TestPack_EmptyTree(t *testing.T) {
	nodes := layout.Pack(domain.NewTree(), 800, layout.DefaultOptions())

	require.Len(t, nodes, 1)
	assert.Equal(t, "root", nodes[0].ID)
	assert.InDelta(t, 385, nodes[0].X, 0)
	assert.Zero(t, nodes[0].R)
}

func TestPack_ZeroWeightGroups(t *testing.T) {
	tr, _ := tree.Build([]domain.Row{
		{NodeID: "g1", ParentID: "0", Title: "g1", Weight: 0},
		{NodeID: "g2", ParentID: "0", Title: "g2", Weight: 0},
	})

	nodes := layout.Pack(tr, 800, layout.DefaultOptions())

	require.Len(t, nodes, 3)
	for _, n := range nodes {
		assert.False(t, math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.R), n.ID)
	}
}

func TestPack_EmptyGroupBesideLeaves(t *testing.T) {
	tr, _ := tree.Build([]domain.Row{
		{NodeID: "g1", ParentID: "0", Title: "g1", Weight: 0},
		{NodeID: "g2", ParentID: "0", Title: "g2", Weight: 0},
		{NodeID: "l1", ParentID: "g1", Title: "l1", Weight: 5},
		{NodeID: "l2", ParentID: "g1", Title: "l2", Weight: 3},
	})

	nodes := layout.Pack(tr, 800, layout.DefaultOptions())

	m := byID(nodes)
	require.Len(t, m, 5)
	assertPacked(t, tr, nodes, 800)
	assert.Zero(t, m["g2"].Value)
}

func TestPack_Deterministic(t *testing.T) {
	rows := []domain.Row{
		{NodeID: "1", ParentID: "0", Title: "one", Weight: 0},
		{NodeID: "2", ParentID: "0", Title: "two", Weight: 0},
		{NodeID: "3", ParentID: "1", Title: "three", Weight: 5},
		{NodeID: "4", ParentID: "1", Title: "four", Weight: 2},
		{NodeID: "5", ParentID: "1", Title: "five", Weight: 7},
		{NodeID: "6", ParentID: "2", Title: "six", Weight: 1},
		{NodeID: "7", ParentID: "2", Title: "seven", Weight: 1},
		{NodeID: "8", ParentID: "2", Title: "eight", Weight: 3},
		{NodeID: "9", ParentID: "2", Title: "nine", Weight: 8},
	}
	a, _ := tree.Build(rows)
	b, _ := tree.Build(rows)

	first := layout.Pack(a, 600, layout.DefaultOptions())
	second := layout.Pack(a, 600, layout.DefaultOptions())
	rebuilt := layout.Pack(b, 600, layout.DefaultOptions())

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].X, second[i].X)
		assert.Equal(t, first[i].Y, second[i].Y)
		assert.Equal(t, first[i].R, second[i].R)
		assert.Equal(t, first[i].X, rebuilt[i].X)
		assert.Equal(t, first[i].R, rebuilt[i].R)
	}
	assertPacked(t, a, first, 600)
}

func TestPack_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tr := genTree(rt)
		size := rapid.Float64Range(100, 2000).Draw(rt, "size")

		first := layout.Pack(tr, size, layout.DefaultOptions())
		second := layout.Pack(tr, size, layout.DefaultOptions())

		if len(first) != tr.Len() {
			rt.Fatalf("packed %d nodes, tree has %d", len(first), tr.Len())
		}
		for i := range first {
			if first[i] != second[i] {
				rt.Fatalf("pack is not deterministic at %s", first[i].ID)
			}
		}
		assertPacked(rt, tr, first, size)
	})
}

// genTree draws a random tree from rows. Weight 0 rows become groups.
func genTree(rt *rapid.T) *domain.Tree {
	n := rapid.IntRange(0, 40).Draw(rt, "rows")
	groups := []string{"0"}
	rows := make([]domain.Row, 0, n)
	for i := range n {
		id := strconv.Itoa(i + 1)
		parent := rapid.SampledFrom(groups).Draw(rt, "parent")
		weight := 0.0
		if rapid.IntRange(0, 2).Draw(rt, "kind") > 0 {
			weight = rapid.Float64Range(0.1, 100).Draw(rt, "weight")
		} else {
			groups = append(groups, id)
		}
		rows = append(rows, domain.Row{NodeID: id, ParentID: parent, Title: "t " + id, Weight: weight})
	}
	tr, _ := tree.Build(rows)
	return tr
}

type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

// assertPacked checks containment, sibling separation, breadth-first order
// and the root disc filling the packing square.
func assertPacked(t fataler, tr *domain.Tree, nodes []domain.PositionedNode, size float64) {
	t.Helper()
	eps := 1e-6 * size
	m := byID(nodes)

	root := nodes[0]
	w := size - domain.PageMargin
	if root.R > 0 && math.Abs(root.R-w/2) > eps {
		t.Fatalf("root radius %v, want %v", root.R, w/2)
	}

	seen := map[string]int{}
	for i, n := range nodes {
		seen[n.ID] = i
		if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.R) {
			t.Fatalf("%s has NaN geometry", n.ID)
		}
		p := n.Node.Parent()
		if p == nil {
			continue
		}
		pi, ok := seen[p.ID]
		if !ok || pi >= i {
			t.Fatalf("%s listed before its parent %s", n.ID, p.ID)
		}
		if n.Depth != nodes[pi].Depth+1 {
			t.Fatalf("%s depth %d under parent depth %d", n.ID, n.Depth, nodes[pi].Depth)
		}
		pn := m[p.ID]
		if math.Hypot(n.X-pn.X, n.Y-pn.Y)+n.R > pn.R+eps {
			t.Fatalf("%s escapes parent %s", n.ID, p.ID)
		}
	}

	for v := range tr.Walk() {
		kids := v.Node.Children()
		for i := range kids {
			for j := i + 1; j < len(kids); j++ {
				a, b := m[kids[i].ID], m[kids[j].ID]
				if math.Hypot(a.X-b.X, a.Y-b.Y) < a.R+b.R-eps {
					t.Fatalf("siblings %s and %s overlap", a.ID, b.ID)
				}
			}
		}
	}
}
