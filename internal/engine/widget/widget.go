// Package widget owns the state of one bubble chart: the tree, its layout,
// the selection and the viewport. A Widget is not safe for concurrent use;
// hosts drive it from a single goroutine.
package widget

import (
	"fmt"
	"time"

	"github.com/fogleman/ease"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/core/ports"
	"go.trai.ch/bubbles/internal/engine/identity"
	"go.trai.ch/bubbles/internal/engine/layout"
	"go.trai.ch/bubbles/internal/engine/mutator"
	"go.trai.ch/bubbles/internal/engine/selection"
	"go.trai.ch/bubbles/internal/engine/tree"
	"go.trai.ch/bubbles/internal/engine/viewport"
)

// Options configures a Widget.
type Options struct {
	Size         float64
	Layout       layout.Options
	ZoomDuration time.Duration
	MoveDuration time.Duration
}

// DefaultOptions returns the options of an 800px chart.
func DefaultOptions() Options {
	return Options{
		Size:         domain.DefaultSize,
		Layout:       layout.DefaultOptions(),
		ZoomDuration: domain.ZoomDuration,
		MoveDuration: domain.MoveDuration,
	}
}

// FromSettings maps loaded settings onto widget options.
func FromSettings(s domain.Settings) Options {
	return Options{
		Size:         s.Size,
		Layout:       layout.Options{Margin: s.Margin, Padding: s.Padding},
		ZoomDuration: s.ZoomDuration,
		MoveDuration: s.MoveDuration,
	}
}

// Change describes what RenderValue did.
type Change struct {
	// Rebuilt is set when the chart was torn down and drawn from scratch.
	Rebuilt bool
	Diff    identity.Diff
	Report  tree.Report
}

// MoveFunc receives every completed move with the resulting assignments.
type MoveFunc func(res mutator.Result, assignments []domain.Assignment)

// tween carries the screen geometry elements had when a move started.
type tween struct {
	start time.Time
	from  map[string]viewport.Disc
}

// Widget is the controller behind one chart.
type Widget struct {
	opts   Options
	logger ports.Logger

	tree     *domain.Tree
	clusters int
	nodes    []domain.PositionedNode
	index    map[string]domain.PositionedNode

	selection selection.Controller
	view      *viewport.Controller
	move      *tween
	focus     string
	hover     string
	onMove    MoveFunc
}

// New creates a widget with no data.
func New(opts Options, logger ports.Logger) *Widget {
	return &Widget{
		opts:     opts,
		logger:   logger,
		clusters: -1,
		view:     viewport.NewController(domain.Viewport{}),
	}
}

// OnMove registers the move notification. A nil fn disables it.
func (w *Widget) OnMove(fn MoveFunc) {
	w.onMove = fn
}

// Loaded reports whether rows were rendered at least once.
func (w *Widget) Loaded() bool {
	return w.tree != nil
}

// Options returns the current options.
func (w *Widget) Options() Options {
	return w.opts
}

// Tree returns the current tree, or nil before the first render.
func (w *Widget) Tree() *domain.Tree {
	return w.tree
}

// Layout returns the current layout in breadth-first order.
func (w *Widget) Layout() []domain.PositionedNode {
	return w.nodes
}

// Node returns the positioned node with the given id.
func (w *Widget) Node(id string) (domain.PositionedNode, bool) {
	p, ok := w.index[id]
	return p, ok
}

// FocusID returns the id of the node zoomed into, or "" when the chart shows
// the whole tree.
func (w *Widget) FocusID() string {
	return w.focus
}

// SelectedID returns the id of the selected source, or "".
func (w *Widget) SelectedID() string {
	if src := w.selection.Source(); src != nil {
		return src.ID
	}
	return ""
}

// HoverID returns the id of the hovered node, or "".
func (w *Widget) HoverID() string {
	return w.hover
}

// Viewport returns the viewport at now.
func (w *Widget) Viewport(now time.Time) domain.Viewport {
	return w.view.Current(now)
}

// Assignments lists the current child:parent pairs, or nil before the first
// render.
func (w *Widget) Assignments() []domain.Assignment {
	if w.tree == nil {
		return nil
	}
	return w.tree.Assignments()
}

// RenderValue rebuilds the chart from rows. Nil rows mean no data yet and
// leave the widget untouched. When the number of top-level clusters changes
// the chart is torn down and the selection dropped; otherwise the new layout
// is diffed against the old one and the selection follows its node id.
func (w *Widget) RenderValue(rows []domain.Row) (Change, bool) {
	if rows == nil {
		return Change{}, false
	}

	t, rep := tree.Build(rows)
	for _, d := range rep.Dropped {
		w.logger.Warn(fmt.Sprintf("dropped row %q (parent %q): %s", d.Row.NodeID, d.Row.ParentID, d.Reason))
	}

	rebuilt := t.Clusters() != w.clusters
	prev := w.nodes
	if rebuilt {
		prev = nil
		w.selection.Reset()
		w.hover = ""
	}

	w.tree = t
	w.clusters = t.Clusters()
	w.relayout()
	if !rebuilt {
		w.selection.Rebind(t)
	}
	w.resetView()

	return Change{
		Rebuilt: rebuilt,
		Diff:    identity.Reconcile(prev, w.nodes),
		Report:  rep,
	}, true
}

// Resize changes the surface size and lays the tree out again. The chart
// returns to the root focus without a transition.
func (w *Widget) Resize(size float64) {
	w.opts.Size = size
	if w.tree == nil {
		return
	}
	w.relayout()
	w.resetView()
}

// Click applies a single click on the node with the given id. Unknown ids
// are ignored. A completed move relays out the tree, snaps the viewport back
// to the root and tweens every surviving element from where it was drawn.
func (w *Widget) Click(id string, now time.Time) (selection.Outcome, mutator.Result) {
	if w.tree == nil {
		return selection.Ignored, mutator.Result{}
	}
	n, ok := w.tree.Node(id)
	if !ok {
		return selection.Ignored, mutator.Result{}
	}

	outcome, res := w.selection.Click(w.tree, n)
	if outcome != selection.Moved {
		return outcome, res
	}

	from := make(map[string]viewport.Disc, len(w.nodes))
	for _, e := range w.Frame(now).Elements {
		from[e.ID] = viewport.Disc{X: e.X, Y: e.Y, R: e.R}
	}

	w.clusters = w.tree.Clusters()
	w.relayout()
	w.resetView()
	w.move = &tween{start: now, from: from}

	if w.onMove != nil {
		w.onMove(res, w.tree.Assignments())
	}
	return outcome, res
}

// DoubleClick zooms. Double clicking the root or the node already in focus
// zooms back out to the root; any other node is zoomed into. The tree and
// layout are not touched.
func (w *Widget) DoubleClick(id string, now time.Time) {
	p, ok := w.index[id]
	if !ok {
		return
	}
	if id == domain.RootID || id == w.focus {
		w.focus = ""
		w.view.TransitionTo(w.rootFocus(), now, w.opts.ZoomDuration)
		return
	}
	w.focus = id
	w.view.TransitionTo(domain.Focus(p, w.opts.Layout.Margin), now, w.opts.ZoomDuration)
}

// Hover marks the node under the pointer. An empty id clears it.
func (w *Widget) Hover(id string) {
	w.hover = id
}

// Animating reports whether a zoom or move transition is running at now.
func (w *Widget) Animating(now time.Time) bool {
	return w.view.Animating(now) || w.moving(now)
}

// Frame projects the layout onto the surface at now.
func (w *Widget) Frame(now time.Time) domain.Frame {
	f := domain.Frame{Size: w.opts.Size}
	if w.tree == nil {
		return f
	}

	vp := w.view.Current(now)
	fontSize := viewport.FontSize(viewport.Scale(vp, w.opts.Size))
	selected := w.SelectedID()

	var progress float64
	moving := w.moving(now)
	if moving {
		progress = ease.InOutCubic(float64(now.Sub(w.move.start)) / float64(w.opts.MoveDuration))
	} else {
		w.move = nil
	}

	f.Elements = make([]domain.Element, 0, len(w.nodes))
	for _, p := range w.nodes {
		disc := viewport.Project(p, vp, w.opts.Size)
		if moving {
			if from, ok := w.move.from[p.ID]; ok {
				disc = lerp(from, disc, progress)
			}
		}
		f.Elements = append(f.Elements, domain.Element{
			ID:       p.ID,
			Depth:    p.Depth,
			Leaf:     p.Node.IsLeaf(),
			Members:  len(p.Node.Children()),
			Selected: p.ID == selected,
			Hovered:  p.ID == w.hover,
			X:        disc.X,
			Y:        disc.Y,
			R:        disc.R,
			FontSize: fontSize,
			Lines:    viewport.Label(p.Node.Terms, fontSize),
		})
	}
	return f
}

func (w *Widget) moving(now time.Time) bool {
	return w.move != nil && w.opts.MoveDuration > 0 && now.Before(w.move.start.Add(w.opts.MoveDuration))
}

func (w *Widget) relayout() {
	w.nodes = layout.Pack(w.tree, w.opts.Size, w.opts.Layout)
	w.index = identity.Index(w.nodes)
}

func (w *Widget) resetView() {
	w.focus = ""
	w.move = nil
	w.view.Jump(w.rootFocus())
}

func (w *Widget) rootFocus() domain.Viewport {
	if len(w.nodes) == 0 {
		return domain.Viewport{}
	}
	return domain.Focus(w.nodes[0], w.opts.Layout.Margin)
}

func lerp(a, b viewport.Disc, t float64) viewport.Disc {
	return viewport.Disc{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		R: a.R + (b.R-a.R)*t,
	}
}
