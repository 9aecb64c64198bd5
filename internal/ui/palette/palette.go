// Package palette maps chart elements to fill colours.
package palette

import (
	"github.com/lucasb-eyer/go-colorful"
	"go.trai.ch/bubbles/internal/core/domain"
)

// darken is the factor applied per step by Darker.
const darken = 0.7

var (
	// Selected fills the selected source node.
	Selected = colorful.Color{R: 25.0 / 255, G: 101.0 / 255, B: 1}
	// Blank fills leaves and empty groups.
	Blank = colorful.Color{R: 1, G: 1, B: 1}
	// Label is the text colour.
	Label = colorful.Color{}

	light = colorful.Hsl(155, 0.30, 0.82)
	dark  = colorful.Hsl(155, 0.66, 0.25)
)

// Depth returns the group colour for a tree depth. Depths map linearly from
// [-1, 1] onto the light-to-dark ramp in HCL space; deeper groups extrapolate
// past the dark end.
func Depth(depth int) colorful.Color {
	t := (float64(depth) + 1) / 2
	return light.BlendHcl(dark, t).Clamped()
}

// Darker scales each channel by 0.7.
func Darker(c colorful.Color) colorful.Color {
	return colorful.Color{R: c.R * darken, G: c.G * darken, B: c.B * darken}
}

// Fill returns the fill colour of an element.
func Fill(e domain.Element) colorful.Color {
	switch {
	case e.Selected:
		return Selected
	case e.Hovered && e.Depth != 0:
		return Darker(Depth(e.Depth))
	case e.Members > 0:
		return Depth(e.Depth)
	default:
		return Blank
	}
}

// Hex returns the fill colour of an element as #rrggbb.
func Hex(e domain.Element) string {
	return Fill(e).Hex()
}
