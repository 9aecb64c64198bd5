package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		listStyle.Width(m.listWidth()).Render(m.outline()),
		detailStyle.Render(m.detail.View()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine(), m.help.View(m.keys))
}

// outline renders the title and the visible rows.
func (m *Model) outline() string {
	var s strings.Builder

	title := "TOPICS"
	if f := m.Widget.FocusID(); f != "" {
		title += " · " + m.label(f)
	}
	s.WriteString(titleStyle.Render(title) + "\n\n")

	if len(m.Rows) == 0 {
		s.WriteString(dimStyle.Render("  no data"))
		return s.String()
	}

	end := min(m.Offset+m.visibleRows(), len(m.Rows))
	for i := m.Offset; i < end; i++ {
		s.WriteString(m.renderRow(i, m.Rows[i]))
		if i < end-1 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

func (m *Model) renderRow(index int, r Row) string {
	cursor := "  "
	if index == m.Cursor {
		cursor = cursorStyle.Render("> ")
	}

	icon := style.Leaf
	switch {
	case r.Leaf:
	case r.Open:
		icon = style.Expanded
	default:
		icon = style.Collapsed
	}

	text := fmt.Sprintf("%s %s", icon, r.Label)
	if r.Leaf {
		text += " " + dimStyle.Render(strconv.FormatFloat(r.Weight, 'f', -1, 64))
	} else {
		text += " " + dimStyle.Render(fmt.Sprintf("(%d)", r.Members))
	}

	st := leafStyle
	switch {
	case r.ID == m.Widget.SelectedID():
		st = selectedStyle
	case r.ID == m.Widget.HoverID():
		st = hoveredStyle
	case !r.Leaf:
		st = groupStyle
	}
	return cursor + strings.Repeat("  ", r.Depth-1) + st.Render(text)
}

// refreshDetail rewrites the side pane.
func (m *Model) refreshDetail() {
	if m.Widget.Tree() == nil {
		m.detail.SetContent(dimStyle.Render("waiting for rows"))
		return
	}

	var b strings.Builder
	focus := "root"
	if f := m.Widget.FocusID(); f != "" {
		focus = m.label(f)
	}
	selected := "none"
	if s := m.Widget.SelectedID(); s != "" {
		selected = m.label(s)
	}
	vp := m.Widget.Viewport(m.now())

	fmt.Fprintf(&b, "focus     %s\n", focus)
	fmt.Fprintf(&b, "selected  %s\n", selected)
	fmt.Fprintf(&b, "view      x=%.1f y=%.1f d=%.1f\n", vp.X, vp.Y, vp.Diameter)
	b.WriteString("\n" + titleStyle.Render("ASSIGNMENTS") + "\n")
	for _, a := range m.Widget.Assignments() {
		parent := a.ParentID
		if parent == domain.RootAssignmentID {
			parent = "root"
		}
		fmt.Fprintf(&b, "%s → %s\n", a.ChildID, parent)
	}
	m.detail.SetContent(strings.TrimSuffix(b.String(), "\n"))
}

func (m *Model) statusLine() string {
	switch {
	case m.Status == "":
		return ""
	case m.Failed:
		return errorStyle.Render(style.Cross + " " + m.Status)
	default:
		return dimStyle.Render(m.Status)
	}
}
