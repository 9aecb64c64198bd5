// Package app implements the application layer for bubbles.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/bubbles/internal/adapters/sink"
	"go.trai.ch/bubbles/internal/adapters/telemetry"
	"go.trai.ch/bubbles/internal/adapters/tui"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/core/ports"
	"go.trai.ch/bubbles/internal/engine/mutator"
	"go.trai.ch/bubbles/internal/engine/selection"
	"go.trai.ch/bubbles/internal/engine/widget"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// SinkOpener picks the assignment sink for a target.
type SinkOpener interface {
	Open(target string) ports.AssignmentSink
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	source       ports.RowSource
	surfaces     map[string]ports.Surface
	sinks        SinkOpener
	tracer       ports.Tracer
	watcher      ports.Watcher
	teaOptions   []tea.ProgramOption
	stdout       io.Writer
	stderr       io.Writer
	now          func() time.Time
	getwd        func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	source ports.RowSource,
	sinks SinkOpener,
	tracer ports.Tracer,
	watcher ports.Watcher,
	surfaces ...ports.Surface,
) *App {
	a := &App{
		configLoader: loader,
		logger:       log,
		source:       source,
		surfaces:     make(map[string]ports.Surface, len(surfaces)),
		sinks:        sinks,
		tracer:       tracer,
		watcher:      watcher,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		now:          time.Now,
		getwd:        os.Getwd,
	}
	for _, s := range surfaces {
		a.surfaces[s.Format()] = s
	}
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput redirects standard output and standard error.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout, a.stderr = stdout, stderr
	return a
}

// WithClock replaces the clock used to time transitions.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithWorkingDir fixes the directory the config file is discovered from.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// Common holds the options every use case takes.
type Common struct {
	// Input is the rows file, or "-" for standard input.
	Input string
	// Verbose logs a line for every finished span.
	Verbose bool
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	Common
	// Output is the file the frame is written to, or "-" for standard output.
	Output string
	// Format overrides the configured surface format.
	Format string
	// Size overrides the configured surface size when positive.
	Size float64
	// Focus zooms into the node with this id before drawing.
	Focus string
}

// MoveOptions configuration for the Move method.
type MoveOptions struct {
	Common
	Source string
	Dest   string
	// Assignments overrides the configured assignment target.
	Assignments string
	// Output, when set, receives the chart after the move has settled.
	Output string
	Format string
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	RenderOptions
}

// InteractiveOptions configuration for the Interactive method.
type InteractiveOptions struct {
	Common
	// Assignments overrides the configured assignment target.
	Assignments string
	// Watch reloads the rows whenever the input file changes.
	Watch bool
}

// session is the state shared by one use case run.
type session struct {
	settings domain.Settings
	rows     []domain.Row
	widget   *widget.Widget
}

// Render lays out the rows once and draws the resting chart.
func (a *App) Render(ctx context.Context, opts RenderOptions) error {
	defer a.setupTracing(opts.Verbose)()

	s, err := a.open(ctx, opts.Input, opts.Size)
	if err != nil {
		return err
	}
	surface, err := a.surface(opts.Format, s.settings)
	if err != nil {
		return err
	}

	at := a.now()
	if opts.Focus != "" {
		if _, ok := s.widget.Node(opts.Focus); !ok {
			return zerr.With(domain.ErrNodeNotFound, "id", opts.Focus)
		}
		s.widget.DoubleClick(opts.Focus, at)
		at = at.Add(s.settings.ZoomDuration)
	}
	return a.draw(ctx, surface, s.widget.Frame(at), opts.Output)
}

// Move selects source, clicks dest and publishes the resulting assignments.
func (a *App) Move(ctx context.Context, opts MoveOptions) (err error) {
	defer a.setupTracing(opts.Verbose)()

	s, err := a.open(ctx, opts.Input, 0)
	if err != nil {
		return err
	}

	ctx, span := a.tracer.Start(ctx, "move",
		ports.WithAttribute("source", opts.Source),
		ports.WithAttribute("dest", opts.Dest),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	for _, id := range []string{opts.Source, opts.Dest} {
		if _, ok := s.widget.Node(id); !ok {
			return zerr.With(domain.ErrNodeNotFound, "id", id)
		}
	}

	var published []domain.Assignment
	s.widget.OnMove(func(res mutator.Result, assignments []domain.Assignment) {
		span.SetAttribute("moved", len(res.Moved))
		published = assignments
	})

	now := a.now()
	if outcome, _ := s.widget.Click(opts.Source, now); outcome != selection.Selected {
		return zerr.With(zerr.With(domain.ErrMoveRejected, "source", opts.Source), "reason", "not selectable")
	}
	if outcome, _ := s.widget.Click(opts.Dest, now); outcome != selection.Moved {
		return zerr.With(zerr.With(domain.ErrMoveRejected, "source", opts.Source), "dest", opts.Dest)
	}

	target := opts.Assignments
	if target == "" {
		target = s.settings.Assignments
	}
	if target == "" {
		target = sink.Stdout
	}
	if err := a.sinks.Open(target).Publish(ctx, published); err != nil {
		return err
	}

	if opts.Output == "" {
		return nil
	}
	surface, err := a.surface(opts.Format, s.settings)
	if err != nil {
		return err
	}
	return a.draw(ctx, surface, s.widget.Frame(now.Add(s.settings.MoveDuration)), opts.Output)
}

// Assignments prints the child:parent listing of the rows as loaded.
func (a *App) Assignments(ctx context.Context, opts Common) error {
	defer a.setupTracing(opts.Verbose)()

	s, err := a.open(ctx, opts.Input, 0)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(a.stdout, domain.FormatAssignments(s.widget.Assignments())); err != nil {
		return zerr.Wrap(err, "failed to write assignments")
	}
	return nil
}

// Watch renders the chart and renders it again every time the input file
// settles after a change. It returns when ctx is done.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	if opts.Input == "-" {
		return domain.ErrWatchStdin
	}
	defer a.setupTracing(opts.Verbose)()

	s, err := a.open(ctx, opts.Input, opts.Size)
	if err != nil {
		return err
	}
	surface, err := a.surface(opts.Format, s.settings)
	if err != nil {
		return err
	}
	if err := a.draw(ctx, surface, s.widget.Frame(a.now()), opts.Output); err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, opts.Input); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	stop := context.AfterFunc(ctx, func() { _ = a.watcher.Stop() })
	defer func() {
		if stop() {
			_ = a.watcher.Stop()
		}
	}()
	a.logger.Info("watching " + opts.Input)

	last := domain.RowsFingerprint(s.rows)
	for ev := range a.watcher.Events() {
		if ev.Operation == ports.OpRemove {
			a.logger.Warn(ev.Path + " was removed, keeping the last chart")
			continue
		}
		rows, err := a.loadRows(ctx, opts.Input)
		if err != nil {
			a.logger.Error(err)
			continue
		}
		fp := domain.RowsFingerprint(rows)
		if fp == last {
			continue
		}
		last = fp

		a.layout(ctx, s.widget, rows)
		if err := a.draw(ctx, surface, s.widget.Frame(a.now()), opts.Output); err != nil {
			a.logger.Error(err)
			continue
		}
		a.logger.Info(fmt.Sprintf("rendered %d topics", len(rows)))
	}
	return nil
}

// Interactive runs the terminal host until the user quits.
func (a *App) Interactive(ctx context.Context, opts InteractiveOptions) error {
	if opts.Watch && opts.Input == "-" {
		return domain.ErrWatchStdin
	}
	defer a.setupTracing(opts.Verbose)()

	settings, err := a.settings()
	if err != nil {
		return err
	}

	target := opts.Assignments
	if target == "" {
		target = settings.Assignments
	}
	w := widget.New(widget.FromSettings(settings), a.logger)
	model := tui.NewModel(ctx, w, tui.Options{
		Sink:   a.sinks.Open(target),
		Now:    a.now,
		Output: a.stderr,
	})
	teaOpts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, a.teaOptions...)
	renderer := tui.NewRenderer(model, settings.ClickDelay, teaOpts...)

	g, gctx := errgroup.WithContext(ctx)
	// watching is closed once the loader has started the watcher or given up.
	watching := make(chan struct{})
	doneStarting := sync.OnceFunc(func() { close(watching) })

	// Renderer Routine
	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		err := renderer.Wait()
		if opts.Watch {
			<-watching
			_ = a.watcher.Stop()
		}
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	// Loader Routine
	g.Go(func() error {
		defer doneStarting()

		rows, err := a.loadRows(gctx, opts.Input)
		if err != nil {
			_ = renderer.Stop()
			return err
		}
		renderer.Load(rows)
		if !opts.Watch {
			return nil
		}

		if err := a.watcher.Start(gctx, opts.Input); err != nil {
			_ = renderer.Stop()
			return zerr.Wrap(err, "failed to start watcher")
		}
		doneStarting()

		last := domain.RowsFingerprint(rows)
		for range a.watcher.Events() {
			next, err := a.loadRows(gctx, opts.Input)
			if err != nil {
				a.logger.Error(err)
				continue
			}
			if fp := domain.RowsFingerprint(next); fp != last {
				last = fp
				renderer.Load(next)
			}
		}
		return nil
	})

	return g.Wait()
}

// open loads settings and rows and lays them out.
func (a *App) open(ctx context.Context, input string, size float64) (*session, error) {
	settings, err := a.settings()
	if err != nil {
		return nil, err
	}
	if size > 0 {
		settings.Size = size
	}

	rows, err := a.loadRows(ctx, input)
	if err != nil {
		return nil, err
	}

	w := widget.New(widget.FromSettings(settings), a.logger)
	a.layout(ctx, w, rows)
	return &session{settings: settings, rows: rows, widget: w}, nil
}

func (a *App) settings() (domain.Settings, error) {
	cwd, err := a.getwd()
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to get working directory")
	}
	settings, err := a.configLoader.Load(cwd)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}
	if j, ok := a.logger.(interface{ SetJSON(bool) }); ok && settings.LogJSON {
		j.SetJSON(true)
	}
	return settings, nil
}

func (a *App) loadRows(ctx context.Context, input string) (rows []domain.Row, err error) {
	ctx, span := a.tracer.Start(ctx, "load_rows", ports.WithAttribute("path", input))
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	rows, err = a.source.Load(ctx, input)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.Row{}
	}
	span.SetAttribute("rows", len(rows))
	return rows, nil
}

func (a *App) layout(ctx context.Context, w *widget.Widget, rows []domain.Row) {
	_, span := a.tracer.Start(ctx, "layout")
	defer span.End()

	change, _ := w.RenderValue(rows)
	span.SetAttribute("nodes", len(w.Layout()))
	span.SetAttribute("dropped", len(change.Report.Dropped))
	span.SetAttribute("rebuilt", change.Rebuilt)
}

func (a *App) surface(format string, settings domain.Settings) (ports.Surface, error) {
	if format == "" {
		format = settings.Format
	}
	s, ok := a.surfaces[format]
	if !ok {
		return nil, zerr.With(domain.ErrUnsupportedFormat, "format", format)
	}
	return s, nil
}

// draw writes frame to output, replacing the file in one step.
func (a *App) draw(ctx context.Context, surface ports.Surface, frame domain.Frame, output string) (err error) {
	ctx, span := a.tracer.Start(ctx, "render",
		ports.WithAttribute("format", surface.Format()),
		ports.WithAttribute("elements", len(frame.Elements)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	if output == "" || output == sink.Stdout {
		return surface.Render(ctx, a.stdout, frame)
	}
	return sink.ReplaceFile(output, func(w io.Writer) error {
		return surface.Render(ctx, w, frame)
	})
}

// setupTracing logs every finished span when verbose is set. The returned
// function flushes the provider.
func (a *App) setupTracing(verbose bool) func() {
	if !verbose {
		return func() {}
	}

	// Route spans from the global tracer to the logger.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(telemetry.NewBridge(a.logger)),
	)
	otel.SetTracerProvider(tp)

	return func() {
		_ = tp.Shutdown(context.Background())
	}
}
