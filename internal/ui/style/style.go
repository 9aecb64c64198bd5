// Package style holds the terminal colours and icons shared by the logger
// and the interactive view. Chart colours come from the palette so the
// terminal and the rendered chart agree.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/bubbles/internal/ui/palette"
)

// Chart colours.
var (
	Selected = lipgloss.Color(palette.Selected.Hex())
	Group    = lipgloss.Color(palette.Depth(1).Hex())
	Hovered  = lipgloss.Color(palette.Darker(palette.Depth(1)).Hex())
)

// Text colours.
var (
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check     = "✓"
	Cross     = "✗"
	Warning   = "!"
	Leaf      = "•"
	Expanded  = "▾"
	Collapsed = "▸"
)
