package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/bubbles/internal/ui/style"
)

var (
	groupStyle = lipgloss.NewStyle().
			Foreground(style.Group).
			Bold(true)

	leafStyle = lipgloss.NewStyle()

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Selected).
			Bold(true)

	hoveredStyle = lipgloss.NewStyle().
			Foreground(style.Hovered).
			Underline(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(style.Selected).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Group).
			Foreground(style.White)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	listStyle = lipgloss.NewStyle().
			PaddingRight(2)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(style.Slate).
			PaddingLeft(1)
)
