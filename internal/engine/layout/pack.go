// Package layout computes a padded circle packing of a topic tree.
package layout

import (
	"iter"
	"math"
	"slices"

	"go.trai.ch/bubbles/internal/core/domain"
	"gonum.org/v1/gonum/spatial/r2"
)

// Options configures a packing pass.
type Options struct {
	// Margin is subtracted from the surface size to get the packing width.
	Margin float64
	// Padding separates sibling discs.
	Padding float64
}

// DefaultOptions returns the standard margin and padding.
func DefaultOptions() Options {
	return Options{
		Margin:  domain.PageMargin,
		Padding: domain.NodePadding,
	}
}

// Width returns the side of the square the packing fills for a surface size.
func (o Options) Width(size float64) float64 {
	return math.Max(0, size-o.Margin)
}

// circle is a disc during packing. Child positions are relative to the parent
// center until the final translation.
type circle struct {
	p r2.Vec
	r float64
}

type hnode struct {
	node     *domain.Node
	depth    int
	value    float64
	children []*hnode
	circle
}

// Pack lays the tree out in a square of side size-Margin and returns every
// node breadth-first, parents before children. Siblings are ordered by
// descending subtree value with ties kept in tree order. The tree is not
// modified and equal input yields identical output.
func Pack(t *domain.Tree, size float64, opts Options) []domain.PositionedNode {
	w := opts.Width(size)
	root := hierarchy(t.Root(), 0)

	for n := range eachBefore(root) {
		if len(n.children) == 0 {
			n.r = math.Sqrt(n.value)
		}
	}

	random := lcg()
	for n := range eachAfter(root) {
		packChildren(n, 0, random)
	}
	k := 0.0
	if w > 0 {
		k = root.r / w
	}
	for n := range eachAfter(root) {
		packChildren(n, opts.Padding*k, random)
	}

	center := r2.Vec{X: w / 2, Y: w / 2}
	if root.r > 0 {
		translate(root, center, w/(2*root.r))
	} else {
		for n := range eachBefore(root) {
			n.p = center
			n.r = 0
		}
	}

	return flatten(root)
}

func hierarchy(n *domain.Node, depth int) *hnode {
	h := &hnode{node: n, depth: depth}
	if n.IsLeaf() {
		h.value = n.Weight
	}
	if kids := n.Children(); len(kids) > 0 {
		h.children = make([]*hnode, len(kids))
		for i, c := range kids {
			h.children[i] = hierarchy(c, depth+1)
			h.value += h.children[i].value
		}
		slices.SortStableFunc(h.children, func(a, b *hnode) int {
			switch {
			case a.value > b.value:
				return -1
			case a.value < b.value:
				return 1
			default:
				return 0
			}
		})
	}
	return h
}

// packChildren packs n's children around the origin with each child grown
// by pad, then sets n's radius to the enclosing radius plus pad.
func packChildren(n *hnode, pad float64, random func() float64) {
	if len(n.children) == 0 {
		return
	}
	cs := make([]*circle, len(n.children))
	for i, c := range n.children {
		c.r += pad
		cs[i] = &c.circle
	}
	e := packSiblings(cs, random)
	for _, c := range n.children {
		c.r -= pad
	}
	n.r = e + pad
}

// translate scales every radius by k and turns relative child positions into
// absolute ones, with the root at center.
func translate(root *hnode, center r2.Vec, k float64) {
	root.p = center
	root.r *= k
	var visit func(n *hnode)
	visit = func(n *hnode) {
		for _, c := range n.children {
			c.r *= k
			c.p = r2.Add(n.p, r2.Scale(k, c.p))
			visit(c)
		}
	}
	visit(root)
}

func flatten(root *hnode) []domain.PositionedNode {
	var out []domain.PositionedNode
	queue := []*hnode{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, domain.PositionedNode{
			ID:    n.node.ID,
			Node:  n.node,
			X:     n.p.X,
			Y:     n.p.Y,
			R:     n.r,
			Depth: n.depth,
			Value: n.value,
		})
		queue = append(queue, n.children...)
	}
	return out
}

func eachBefore(root *hnode) iter.Seq[*hnode] {
	return func(yield func(*hnode) bool) {
		stack := []*hnode{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, n.children[i])
			}
		}
	}
}

func eachAfter(root *hnode) iter.Seq[*hnode] {
	return func(yield func(*hnode) bool) {
		var visit func(n *hnode) bool
		visit = func(n *hnode) bool {
			for _, c := range n.children {
				if !visit(c) {
					return false
				}
			}
			return yield(n)
		}
		visit(root)
	}
}
