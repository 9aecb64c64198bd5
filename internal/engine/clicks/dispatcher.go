// Package clicks tells single clicks from double clicks with a cancellable
// timer.
package clicks

import (
	"sync"
	"time"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop cancels the callback. It reports false if the callback already ran
	// or was already stopped.
	Stop() bool
}

// AfterFunc schedules f to run once after d.
type AfterFunc func(d time.Duration, f func()) Timer

// SystemAfterFunc schedules f with time.AfterFunc.
func SystemAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Dispatcher counts clicks. The first click arms a timer; if no second click
// arrives before it fires, a single click is delivered for the first target.
// A second click inside the window cancels the timer and delivers a double
// click for the second target.
//
// Single clicks are delivered on the timer's goroutine, double clicks on the
// goroutine that called Click.
type Dispatcher struct {
	mu       sync.Mutex
	delay    time.Duration
	after    AfterFunc
	onSingle func(id string)
	onDouble func(id string)
	pending  *pending
	gen      uint64
}

type pending struct {
	id    string
	gen   uint64
	timer Timer
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithAfterFunc replaces the timer source.
func WithAfterFunc(after AfterFunc) Option {
	return func(d *Dispatcher) {
		d.after = after
	}
}

// NewDispatcher creates a dispatcher with the given double-click window.
func NewDispatcher(delay time.Duration, onSingle, onDouble func(id string), opts ...Option) *Dispatcher {
	d := &Dispatcher{
		delay:    delay,
		after:    SystemAfterFunc,
		onSingle: onSingle,
		onDouble: onDouble,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Click registers a click on the node with the given id.
func (d *Dispatcher) Click(id string) {
	d.mu.Lock()
	d.gen++
	if p := d.pending; p != nil {
		p.timer.Stop()
		d.pending = nil
		d.mu.Unlock()

		if d.onDouble != nil {
			d.onDouble(id)
		}
		return
	}

	gen := d.gen
	d.pending = &pending{id: id, gen: gen}
	d.pending.timer = d.after(d.delay, func() { d.fire(gen) })
	d.mu.Unlock()
}

// fire delivers the pending single click unless a later click superseded it.
func (d *Dispatcher) fire(gen uint64) {
	d.mu.Lock()
	p := d.pending
	if p == nil || p.gen != gen {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.mu.Unlock()

	if d.onSingle != nil {
		d.onSingle(p.id)
	}
}

// Pending reports whether a single click is waiting for its window to close.
func (d *Dispatcher) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Flush delivers a pending single click immediately. It blocks until the
// callback returns.
func (d *Dispatcher) Flush() {
	d.mu.Lock()
	p := d.pending
	if p == nil {
		d.mu.Unlock()
		return
	}
	p.timer.Stop()
	d.pending = nil
	d.gen++
	d.mu.Unlock()

	if d.onSingle != nil {
		d.onSingle(p.id)
	}
}

// Cancel drops a pending single click without delivering it.
func (d *Dispatcher) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.timer.Stop()
		d.pending = nil
		d.gen++
	}
}
