package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/core/ports"
	"go.trai.ch/bubbles/internal/engine/mutator"
	"go.trai.ch/bubbles/internal/engine/selection"
	"go.trai.ch/bubbles/internal/engine/widget"
)

const (
	listWidthRatio = 0.45
	// headerLines is the title line plus the blank line under it.
	headerLines = 2
	footerLines = 2
)

// Clicker receives raw clicks and tells single from double clicks.
type Clicker interface {
	Click(id string)
}

// MsgClick is a settled single click on a node.
type MsgClick struct{ ID string }

// MsgDoubleClick is a double click on a node.
type MsgDoubleClick struct{ ID string }

// MsgRows carries freshly loaded rows.
type MsgRows struct{ Rows []domain.Row }

// MsgTick redraws a running transition.
type MsgTick struct{}

// MsgPublished reports the result of publishing assignments.
type MsgPublished struct{ Err error }

// Model represents the interactive view state.
type Model struct {
	Widget    *widget.Widget
	Rows      []Row
	Collapsed map[string]bool
	Cursor    int
	Offset    int
	Width     int
	Height    int
	// ListHeight is the number of outline rows that fit on screen.
	ListHeight int
	Status     string
	Failed     bool

	ctx       context.Context
	clicker   Clicker
	sink      ports.AssignmentSink
	copy      func(string) error
	now       func() time.Time
	keys      keyMap
	help      help.Model
	detail    viewport.Model
	published []domain.Assignment
}

// SetClicker routes clicks through c. Without a clicker every click is a
// single click.
func (m *Model) SetClicker(c Clicker) {
	m.clicker = c
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // one case per message type
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.ListHeight = max(msg.Height-headerLines-footerLines, 0)
		m.detail.Width = max(msg.Width-m.listWidth()-detailStyle.GetHorizontalFrameSize(), 0)
		m.detail.Height = m.ListHeight
		m.help.Width = msg.Width
		m.ensureVisible()

	case MsgClick:
		return m, m.applyClick(msg.ID)

	case MsgDoubleClick:
		m.Widget.DoubleClick(msg.ID, m.now())
		if f := m.Widget.FocusID(); f != "" {
			m.setStatus("zoomed into "+m.label(f), false)
		} else {
			m.setStatus("zoomed out", false)
		}
		return m, m.tick()

	case MsgRows:
		change, ok := m.Widget.RenderValue(msg.Rows)
		if !ok {
			return m, nil
		}
		if change.Rebuilt {
			clear(m.Collapsed)
			m.Cursor, m.Offset = 0, 0
		}
		m.rebuildRows()
		m.setStatus(fmt.Sprintf("loaded %d topics", len(m.Rows)), false)

	case MsgTick:
		return m, m.tick()

	case MsgPublished:
		if msg.Err != nil {
			m.setStatus(msg.Err.Error(), true)
		}
	}

	m.refreshDetail()
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Expand):
		m.setCollapsed(false)
	case key.Matches(msg, m.keys.Collapse):
		m.setCollapsed(true)
	case key.Matches(msg, m.keys.Click):
		if r, ok := m.current(); ok {
			return m.click(r.ID)
		}
	case key.Matches(msg, m.keys.Zoom):
		if r, ok := m.current(); ok {
			return func() tea.Msg { return MsgDoubleClick{ID: r.ID} }
		}
	case key.Matches(msg, m.keys.ZoomOut):
		if m.Widget.FocusID() != "" {
			return func() tea.Msg { return MsgDoubleClick{ID: domain.RootID} }
		}
	case key.Matches(msg, m.keys.Copy):
		m.copyAssignments()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.refreshDetail()
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	id := m.rowAt(msg.X, msg.Y)
	switch {
	case msg.Action == tea.MouseActionMotion:
		m.Widget.Hover(id)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && id != "":
		m.Cursor = m.Offset + msg.Y - headerLines
		return m.click(id)
	case msg.Button == tea.MouseButtonWheelUp:
		m.move(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.move(1)
	}
	return nil
}

// click hands a raw click to the clicker.
func (m *Model) click(id string) tea.Cmd {
	if m.clicker == nil {
		return func() tea.Msg { return MsgClick{ID: id} }
	}
	m.clicker.Click(id)
	return nil
}

func (m *Model) applyClick(id string) tea.Cmd {
	m.published = nil
	outcome, res := m.Widget.Click(id, m.now())
	m.rebuildRows()

	switch outcome {
	case selection.Selected, selection.Reselected:
		m.setStatus("selected "+m.label(id)+", pick a destination group", false)
	case selection.Deselected:
		m.setStatus("selection cleared", false)
	case selection.Unchanged:
		m.setStatus("nothing to move", false)
	case selection.Moved:
		m.setStatus(describeMove(res, m.label(res.To)), false)
	case selection.Ignored:
	}
	m.refreshDetail()

	if m.published == nil {
		return nil
	}
	assignments := m.published
	m.published = nil
	return tea.Batch(m.tick(), m.publish(assignments))
}

func describeMove(res mutator.Result, dest string) string {
	if res.Removed != "" {
		return fmt.Sprintf("merged %d topics into %s", len(res.Moved), dest)
	}
	return fmt.Sprintf("moved %d topic into %s", len(res.Moved), dest)
}

func (m *Model) publish(assignments []domain.Assignment) tea.Cmd {
	ctx, s := m.ctx, m.sink
	return func() tea.Msg {
		return MsgPublished{Err: s.Publish(ctx, assignments)}
	}
}

// tick schedules a redraw while a transition is running.
func (m *Model) tick() tea.Cmd {
	m.refreshDetail()
	if !m.Widget.Animating(m.now()) {
		return nil
	}
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return MsgTick{} })
}

func (m *Model) copyAssignments() {
	listing := domain.FormatAssignments(m.Widget.Assignments())
	if err := m.copy(listing); err != nil {
		m.setStatus("copy failed: "+err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("copied %d assignments", len(m.Widget.Assignments())), false)
}

func (m *Model) move(delta int) {
	if len(m.Rows) == 0 {
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.Rows)-1)
	m.ensureVisible()
}

func (m *Model) setCollapsed(collapsed bool) {
	r, ok := m.current()
	if !ok || r.Leaf {
		return
	}
	if collapsed {
		m.Collapsed[r.ID] = true
	} else {
		delete(m.Collapsed, r.ID)
	}
	m.rebuildRows()
}

func (m *Model) current() (Row, bool) {
	if m.Cursor >= 0 && m.Cursor < len(m.Rows) {
		return m.Rows[m.Cursor], true
	}
	return Row{}, false
}

// rowAt maps a screen cell to the id of the row drawn there.
func (m *Model) rowAt(x, y int) string {
	if x >= m.listWidth() {
		return ""
	}
	i := m.Offset + y - headerLines
	if y < headerLines || i < 0 || i >= len(m.Rows) || y-headerLines >= m.visibleRows() {
		return ""
	}
	return m.Rows[i].ID
}

// rebuildRows refreshes the outline after the tree changed, keeping the
// cursor on the same node when it still exists.
func (m *Model) rebuildRows() {
	var keep string
	if r, ok := m.current(); ok {
		keep = r.ID
	}
	m.Rows = buildRows(m.Widget.Tree(), m.Collapsed)
	for i, r := range m.Rows {
		if r.ID == keep {
			m.Cursor = i
			m.ensureVisible()
			return
		}
	}
	m.Cursor = min(m.Cursor, max(len(m.Rows)-1, 0))
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	h := m.visibleRows()
	if h <= 0 {
		return
	}
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	} else if m.Cursor >= m.Offset+h {
		m.Offset = m.Cursor - h + 1
	}
}

func (m *Model) visibleRows() int {
	return m.ListHeight
}

func (m *Model) listWidth() int {
	return int(float64(m.Width) * listWidthRatio)
}

func (m *Model) label(id string) string {
	if id == domain.RootID {
		return "root"
	}
	if t := m.Widget.Tree(); t != nil {
		if n, ok := t.Node(id); ok {
			return fmt.Sprintf("%q", n.Label())
		}
	}
	return id
}

func (m *Model) setStatus(s string, failed bool) {
	m.Status, m.Failed = s, failed
}
