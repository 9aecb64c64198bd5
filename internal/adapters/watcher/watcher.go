package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/bubbles/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher implements ports.Watcher with fsnotify. It watches the parent
// directory of every target so that files replaced by a rename are still
// seen, and drops events for other files in those directories.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	debouncer *Debouncer
	targets   map[string]struct{}
	ops       map[string]ports.WatchOp
	events    chan ports.WatchEvent
	settled   chan []string
	done      chan struct{}
}

// NewWatcher creates a watcher that reports a file once it has been quiet
// for window.
func NewWatcher(logger ports.Logger, window time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	w := &Watcher{
		fsWatcher: fsw,
		logger:    logger,
		targets:   make(map[string]struct{}),
		ops:       make(map[string]ports.WatchOp),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		settled:   make(chan []string),
		done:      make(chan struct{}),
	}
	w.debouncer = NewDebouncer(window, w.settle)
	return w, nil
}

// Start begins watching files. Relative paths are resolved against the
// working directory.
func (w *Watcher) Start(ctx context.Context, files ...string) error {
	dirs := make(map[string]struct{}, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve watched file"), "path", f)
		}
		w.targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", dir)
		}
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of settled file events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// settle hands a debounced batch to the event loop.
func (w *Watcher) settle(paths []string) {
	select {
	case w.settled <- paths:
	case <-w.done:
	}
}

// processEvents owns ops and the events channel.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	defer w.debouncer.Stop()
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if _, watched := w.targets[event.Name]; !watched {
				continue
			}
			op, known := convertOp(event.Op)
			if !known {
				continue
			}
			w.ops[event.Name] = op
			w.debouncer.Add(event.Name)

		case paths := <-w.settled:
			for _, p := range paths {
				ev := ports.WatchEvent{Path: p, Operation: w.ops[p]}
				delete(w.ops, p)
				select {
				case w.events <- ev:
				case <-ctx.Done():
					return
				}
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(zerr.Wrap(err, "file watcher error"))
		}
	}
}

// convertOp maps an fsnotify operation, preferring the most destructive bit.
func convertOp(op fsnotify.Op) (ports.WatchOp, bool) {
	switch {
	case op.Has(fsnotify.Remove):
		return ports.OpRemove, true
	case op.Has(fsnotify.Rename):
		return ports.OpRename, true
	case op.Has(fsnotify.Create):
		return ports.OpCreate, true
	case op.Has(fsnotify.Write):
		return ports.OpWrite, true
	default:
		return 0, false
	}
}
