package domain

// PositionedNode is a node with the disc computed by a layout pass.
// Coordinates are in the packing frame, where the root is centered.
type PositionedNode struct {
	ID    string
	Node  *Node
	X     float64
	Y     float64
	R     float64
	Depth int
	Value float64
}

// Viewport is the focused region of the packing frame: a center and the
// diameter that maps onto the drawing surface.
type Viewport struct {
	X        float64
	Y        float64
	Diameter float64
}

// Focus returns the viewport that fits p's disc plus margin.
func Focus(p PositionedNode, margin float64) Viewport {
	return Viewport{X: p.X, Y: p.Y, Diameter: p.R*2 + margin}
}

// Line is one label row, offset vertically from the disc center.
type Line struct {
	Text string
	DY   float64
}

// Element is a node projected onto the drawing surface.
// X and Y are relative to the surface center. Members counts the direct
// children of a group.
type Element struct {
	ID       string
	Depth    int
	Leaf     bool
	Members  int
	Selected bool
	Hovered  bool
	X        float64
	Y        float64
	R        float64
	FontSize float64
	Lines    []Line
}

// Frame is everything a surface needs to draw one moment of the chart.
// Discs are drawn in element order and labels are drawn on top of all discs.
type Frame struct {
	Size     float64
	Elements []Element
}
