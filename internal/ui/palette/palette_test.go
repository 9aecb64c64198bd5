package palette_test

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/ui/palette"
)

func TestDepth_RampEnds(t *testing.T) {
	assert.True(t, palette.Depth(-1).AlmostEqualRgb(colorful.Hsl(155, 0.30, 0.82)))
	assert.True(t, palette.Depth(1).AlmostEqualRgb(colorful.Hsl(155, 0.66, 0.25)))
}

func TestDepth_DarkensWithDepth(t *testing.T) {
	_, _, l0 := palette.Depth(0).Hcl()
	_, _, l1 := palette.Depth(1).Hcl()
	_, _, l2 := palette.Depth(2).Hcl()

	assert.Greater(t, l0, l1)
	assert.GreaterOrEqual(t, l1, l2)
	assert.True(t, palette.Depth(5).IsValid(), "extrapolated colours are clamped")
}

func TestDarker(t *testing.T) {
	c := palette.Darker(colorful.Color{R: 1, G: 0.5, B: 0})

	assert.InDelta(t, 0.7, c.R, 1e-12)
	assert.InDelta(t, 0.35, c.G, 1e-12)
	assert.InDelta(t, 0.0, c.B, 1e-12)
}

func TestFill(t *testing.T) {
	tests := []struct {
		name string
		el   domain.Element
		want colorful.Color
	}{
		{name: "selected wins", el: domain.Element{Selected: true, Hovered: true, Depth: 1, Members: 3}, want: palette.Selected},
		{name: "hovered group", el: domain.Element{Hovered: true, Depth: 1, Members: 3}, want: palette.Darker(palette.Depth(1))},
		{name: "hovered leaf", el: domain.Element{Hovered: true, Depth: 2, Leaf: true}, want: palette.Darker(palette.Depth(2))},
		{name: "hovered root", el: domain.Element{Hovered: true, Depth: 0, Members: 2}, want: palette.Depth(0)},
		{name: "group", el: domain.Element{Depth: 1, Members: 1}, want: palette.Depth(1)},
		{name: "empty group", el: domain.Element{Depth: 1}, want: palette.Blank},
		{name: "leaf", el: domain.Element{Depth: 2, Leaf: true}, want: palette.Blank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, palette.Fill(tt.el))
		})
	}
}

func TestHex_Selected(t *testing.T) {
	assert.Equal(t, "#1965ff", palette.Hex(domain.Element{Selected: true}))
	assert.Equal(t, "#ffffff", palette.Hex(domain.Element{Leaf: true}))
}
