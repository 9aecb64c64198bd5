package tui_test

import (
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bubbles/internal/adapters/tui"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/core/ports/mocks"
	"go.trai.ch/bubbles/internal/engine/widget"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func rows() []domain.Row {
	return []domain.Row{
		{NodeID: "g1", ParentID: "0", Title: "first group", Weight: 0},
		{NodeID: "g2", ParentID: "0", Title: "second", Weight: 0},
		{NodeID: "l1", ParentID: "g1", Title: "alpha", Weight: 4},
		{NodeID: "l2", ParentID: "g1", Title: "beta", Weight: 9},
		{NodeID: "l3", ParentID: "g2", Title: "gamma", Weight: 16},
	}
}

type fixture struct {
	model   *tui.Model
	sink    *mocks.MockAssignmentSink
	copied  []string
	copyErr error
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	f := &fixture{sink: mocks.NewMockAssignmentSink(ctrl)}
	f.model = tui.NewModel(t.Context(), widget.New(widget.DefaultOptions(), logger), tui.Options{
		Sink: f.sink,
		Copy: func(s string) error {
			f.copied = append(f.copied, s)
			return f.copyErr
		},
		Now:    func() time.Time { return t0 },
		Output: io.Discard,
	})
	return f
}

func loaded(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	update(f.model, tea.WindowSizeMsg{Width: 100, Height: 20})
	update(f.model, tui.MsgRows{Rows: rows()})
	return f
}

func update(m *tui.Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd and feeds every message it produces back into the model.
func drain(t *testing.T, m *tui.Model, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	var msgs []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tui.MsgTick:
		default:
			msgs = append(msgs, msg)
			queue = append(queue, update(m, msg))
		}
	}
	return msgs
}

func ids(rows []tui.Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestModel_InitializingView(t *testing.T) {
	f := newFixture(t)

	assert.Nil(t, f.model.Init())
	assert.Equal(t, "Initializing...", f.model.View())
}

func TestModel_LoadBuildsOutline(t *testing.T) {
	f := loaded(t)

	assert.Equal(t, []string{"g1", "l1", "l2", "g2", "l3"}, ids(f.model.Rows))
	assert.Equal(t, []int{1, 2, 2, 1, 2}, []int{
		f.model.Rows[0].Depth, f.model.Rows[1].Depth, f.model.Rows[2].Depth,
		f.model.Rows[3].Depth, f.model.Rows[4].Depth,
	})
	assert.Equal(t, "loaded 5 topics", f.model.Status)

	view := f.model.View()
	assert.Contains(t, view, "TOPICS")
	assert.Contains(t, view, "▾ first group (2)")
	assert.Contains(t, view, "• alpha 4")
	assert.Contains(t, view, "l1 → g1")
	assert.Contains(t, view, "g1 → root")
}

func TestModel_NilRowsAreIgnored(t *testing.T) {
	f := newFixture(t)
	update(f.model, tea.WindowSizeMsg{Width: 100, Height: 20})

	update(f.model, tui.MsgRows{})

	assert.Empty(t, f.model.Rows)
	assert.Contains(t, f.model.View(), "no data")
}

func TestModel_Navigation(t *testing.T) {
	f := loaded(t)
	m := f.model

	update(m, runes("j"))
	update(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Cursor)

	update(m, runes("k"))
	assert.Equal(t, 1, m.Cursor)

	update(m, tea.KeyMsg{Type: tea.KeyUp})
	update(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Cursor, "cursor stops at the top")

	update(m, runes("h"))
	assert.Equal(t, []string{"g1", "g2", "l3"}, ids(m.Rows))
	assert.False(t, m.Rows[0].Open)
	assert.Contains(t, m.View(), "▸ first group")

	update(m, runes("l"))
	assert.Equal(t, []string{"g1", "l1", "l2", "g2", "l3"}, ids(m.Rows))

	for range 10 {
		update(m, runes("j"))
	}
	assert.Equal(t, 4, m.Cursor, "cursor stops at the bottom")
}

func TestModel_ScrollsToCursor(t *testing.T) {
	f := newFixture(t)
	m := f.model
	update(m, tea.WindowSizeMsg{Width: 80, Height: 6})
	update(m, tui.MsgRows{Rows: rows()})
	require.Equal(t, 2, m.ListHeight)

	update(m, runes("j"))
	update(m, runes("j"))
	update(m, runes("j"))

	assert.Equal(t, 3, m.Cursor)
	assert.Equal(t, 2, m.Offset)
	assert.NotContains(t, m.View(), "alpha")
}

func TestModel_ClickThenMovePublishes(t *testing.T) {
	f := loaded(t)
	m := f.model
	f.sink.EXPECT().Publish(gomock.Any(), []domain.Assignment{
		{ChildID: "g1", ParentID: "0"},
		{ChildID: "l2", ParentID: "g1"},
		{ChildID: "g2", ParentID: "0"},
		{ChildID: "l3", ParentID: "g2"},
		{ChildID: "l1", ParentID: "g2"},
	}).Return(nil)

	update(m, runes("j"))
	drain(t, m, update(m, tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, "l1", m.Widget.SelectedID())
	assert.Contains(t, m.Status, `selected "alpha"`)

	update(m, runes("j"))
	update(m, runes("j"))
	msgs := drain(t, m, update(m, tea.KeyMsg{Type: tea.KeySpace}))

	assert.Contains(t, msgs, tui.MsgPublished{})
	assert.Empty(t, m.Widget.SelectedID())
	assert.Equal(t, `moved 1 topic into "second"`, m.Status)
	assert.False(t, m.Failed)
	assert.Equal(t, []string{"g1", "l2", "g2", "l3", "l1"}, ids(m.Rows))
	assert.Equal(t, 2, m.Cursor, "cursor follows the destination node")
}

func TestModel_GroupMergeAndPublishFailure(t *testing.T) {
	f := loaded(t)
	m := f.model
	f.sink.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	drain(t, m, update(m, tui.MsgClick{ID: "g1"}))
	drain(t, m, update(m, tui.MsgClick{ID: "g2"}))

	assert.True(t, m.Failed)
	assert.Equal(t, "disk full", m.Status)
	assert.Equal(t, []string{"g2", "l3", "l1", "l2"}, ids(m.Rows))
	assert.Contains(t, m.View(), "✗ disk full")
}

func TestModel_ClickOutcomes(t *testing.T) {
	f := loaded(t)
	m := f.model

	update(m, tui.MsgClick{ID: "l1"})
	update(m, tui.MsgClick{ID: "l1"})
	assert.Equal(t, "selection cleared", m.Status)

	update(m, tui.MsgClick{ID: "l1"})
	cmd := update(m, tui.MsgClick{ID: "g1"})
	assert.Nil(t, cmd, "nothing is published when the tree is unchanged")
	assert.Equal(t, "nothing to move", m.Status)
	assert.Empty(t, m.Widget.SelectedID())
}

func TestModel_Zoom(t *testing.T) {
	f := loaded(t)
	m := f.model

	cmd := update(m, runes("z"))
	require.NotNil(t, cmd)
	drain(t, m, cmd)
	assert.Equal(t, "g1", m.Widget.FocusID())
	assert.Equal(t, `zoomed into "first group"`, m.Status)
	assert.Contains(t, m.View(), `TOPICS · "first group"`)

	drain(t, m, update(m, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Empty(t, m.Widget.FocusID())
	assert.Equal(t, "zoomed out", m.Status)

	assert.Nil(t, update(m, tea.KeyMsg{Type: tea.KeyEsc}), "esc at the root does nothing")
}

func TestModel_ZoomTicksUntilSettled(t *testing.T) {
	f := loaded(t)
	m := f.model

	cmd := update(m, tui.MsgDoubleClick{ID: "g2"})

	require.NotNil(t, cmd, "a running zoom schedules a redraw")
	assert.True(t, m.Widget.Animating(t0))
}

func TestModel_CopyAssignments(t *testing.T) {
	f := loaded(t)

	update(f.model, runes("c"))

	assert.Equal(t, []string{"g1:0,l1:g1,l2:g1,g2:0,l3:g2,"}, f.copied)
	assert.Equal(t, "copied 5 assignments", f.model.Status)

	f.copyErr = errors.New("no clipboard")
	update(f.model, runes("c"))

	assert.True(t, f.model.Failed)
	assert.Equal(t, "copy failed: no clipboard", f.model.Status)
}

type recordingClicker struct{ ids []string }

func (r *recordingClicker) Click(id string) { r.ids = append(r.ids, id) }

func TestModel_Mouse(t *testing.T) {
	f := loaded(t)
	m := f.model
	clicker := &recordingClicker{}
	m.SetClicker(clicker)

	cmd := update(m, tea.MouseMsg{X: 4, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.Nil(t, cmd)
	assert.Equal(t, []string{"g2"}, clicker.ids)
	assert.Equal(t, 3, m.Cursor)

	update(m, tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionMotion})
	assert.Equal(t, "g1", m.Widget.HoverID())

	update(m, tea.MouseMsg{X: 90, Y: 2, Action: tea.MouseActionMotion})
	assert.Empty(t, m.Widget.HoverID(), "the side pane is not part of the outline")

	update(m, tea.MouseMsg{X: 4, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Len(t, clicker.ids, 1, "the title is not clickable")

	update(m, tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 4, m.Cursor)
}

func TestModel_EnterUsesClicker(t *testing.T) {
	f := loaded(t)
	clicker := &recordingClicker{}
	f.model.SetClicker(clicker)

	cmd := update(f.model, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, []string{"g1"}, clicker.ids)
	assert.Empty(t, f.model.Widget.SelectedID(), "selection waits for the click window")
}

func TestModel_RebuildResetsOutline(t *testing.T) {
	f := loaded(t)
	m := f.model
	update(m, runes("h"))
	update(m, runes("j"))

	update(m, tui.MsgRows{Rows: append(rows(), domain.Row{NodeID: "g3", ParentID: "0", Title: "third"})})

	assert.Empty(t, m.Collapsed)
	assert.Equal(t, 0, m.Cursor)
	assert.Equal(t, []string{"g1", "l1", "l2", "g2", "l3", "g3"}, ids(m.Rows))
}

func TestModel_ReloadKeepsCursorNode(t *testing.T) {
	f := loaded(t)
	m := f.model
	update(m, runes("j"))
	update(m, runes("j"))
	update(m, runes("j"))

	update(m, tui.MsgRows{Rows: append(rows(), domain.Row{NodeID: "l4", ParentID: "g1", Title: "delta", Weight: 1})})

	assert.Equal(t, 4, m.Cursor)
	assert.Equal(t, "g2", m.Rows[m.Cursor].ID)
}

func TestModel_HelpAndQuit(t *testing.T) {
	f := loaded(t)
	m := f.model

	assert.NotContains(t, m.View(), "collapse")
	update(m, runes("?"))
	assert.Contains(t, m.View(), "collapse")

	cmd := update(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
