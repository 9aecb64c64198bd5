// Package tui hosts the bubble chart in a terminal. The tree is shown as an
// indented outline; clicks on rows and the enter key drive the same
// selection, move and zoom rules as the chart.
package tui

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/bubbles/internal/adapters/sink"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/core/ports"
	"go.trai.ch/bubbles/internal/engine/mutator"
	"go.trai.ch/bubbles/internal/engine/widget"
	"go.trai.ch/bubbles/internal/ui/output"
)

// frameInterval paces redraws while a transition runs.
const frameInterval = time.Second / 30

// Options configures a Model.
type Options struct {
	// Sink receives the assignment listing after every move.
	Sink ports.AssignmentSink
	// Copy writes text to the system clipboard.
	Copy func(string) error
	// Now returns the current time.
	Now func() time.Time
	// Output receives styled text. It defaults to stderr.
	Output io.Writer
}

// NewModel creates a model driving w.
func NewModel(ctx context.Context, w *widget.Widget, opts Options) *Model {
	if opts.Sink == nil {
		opts.Sink = sink.Discard{}
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	out := output.New(opts.Output)
	lipgloss.SetColorProfile(out.Profile)

	m := &Model{
		Widget:    w,
		Collapsed: make(map[string]bool),
		ctx:       ctx,
		sink:      opts.Sink,
		copy:      opts.Copy,
		now:       opts.Now,
		keys:      defaultKeyMap(),
		help:      help.New(),
		detail:    viewport.New(0, 0),
	}
	w.OnMove(func(_ mutator.Result, assignments []domain.Assignment) {
		m.published = assignments
	})
	m.rebuildRows()
	return m
}
