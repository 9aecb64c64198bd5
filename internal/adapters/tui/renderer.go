package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/engine/clicks"
)

// Renderer runs a Model in a Bubble Tea program.
type Renderer struct {
	program *tea.Program
	model   *Model
	clicks  *clicks.Dispatcher
	errCh   chan error
}

// NewRenderer creates a program for model whose clicks are told apart with
// the given double-click window.
func NewRenderer(model *Model, clickDelay time.Duration, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)

	// Double clicks are delivered inside Update, where a blocking Send would
	// deadlock the event loop.
	send := func(msg tea.Msg) { go program.Send(msg) }
	d := clicks.NewDispatcher(clickDelay,
		func(id string) { send(MsgClick{ID: id}) },
		func(id string) { send(MsgDoubleClick{ID: id}) },
	)
	model.SetClicker(d)

	return &Renderer{
		program: program,
		model:   model,
		clicks:  d,
		errCh:   make(chan error, 1),
	}
}

// Start launches the program in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.clicks.Cancel()
		r.errCh <- err
	}()
	return nil
}

// Load hands new rows to the program.
func (r *Renderer) Load(rows []domain.Row) {
	r.program.Send(MsgRows{Rows: rows})
}

// Stop signals the program to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the program has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
