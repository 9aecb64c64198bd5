package viewport

import "go.trai.ch/bubbles/internal/core/domain"

// Disc is a disc in surface coordinates, relative to the surface center.
type Disc struct {
	X float64
	Y float64
	R float64
}

// Scale returns the zoom factor mapping vp onto a surface of the given size.
func Scale(vp domain.Viewport, size float64) float64 {
	if vp.Diameter <= 0 {
		return 0
	}
	return size / vp.Diameter
}

// Project maps a positioned node into surface coordinates.
func Project(p domain.PositionedNode, vp domain.Viewport, size float64) Disc {
	k := Scale(vp, size)
	return Disc{
		X: (p.X - vp.X) * k,
		Y: (p.Y - vp.Y) * k,
		R: p.R * k,
	}
}

// FontSize returns the label size in pixels at zoom factor k.
func FontSize(k float64) float64 {
	return domain.FontSize*(k/2) + 3
}

// LineOffset returns the vertical offset of line i of n for a font size.
func LineOffset(i, n int, fontSize float64) float64 {
	return fontSize * 1.2 * (float64(i) - float64(n)/2 + 0.75)
}

// Label lays out terms as lines centered on the disc for a font size.
func Label(terms []string, fontSize float64) []domain.Line {
	lines := make([]domain.Line, len(terms))
	for i, term := range terms {
		lines[i] = domain.Line{Text: term, DY: LineOffset(i, len(terms), fontSize)}
	}
	return lines
}
