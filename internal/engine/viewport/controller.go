package viewport

import (
	"time"

	"github.com/fogleman/ease"
	"go.trai.ch/bubbles/internal/core/domain"
)

// Transition is a timed, eased walk along a Path.
type Transition struct {
	Path     Path
	Start    time.Time
	Duration time.Duration
	Ease     func(float64) float64
}

// Progress returns the eased position along the path at now, in [0, 1].
func (tr Transition) Progress(now time.Time) float64 {
	if tr.Duration <= 0 {
		return 1
	}
	t := float64(now.Sub(tr.Start)) / float64(tr.Duration)
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	if tr.Ease == nil {
		return t
	}
	return tr.Ease(t)
}

// At returns the viewport at now.
func (tr Transition) At(now time.Time) domain.Viewport {
	return tr.Path.At(tr.Progress(now))
}

// Done reports whether the transition has finished at now.
func (tr Transition) Done(now time.Time) bool {
	return !now.Before(tr.Start.Add(tr.Duration))
}

// Controller owns the current viewport and at most one running transition.
type Controller struct {
	rest   domain.Viewport
	active *Transition
}

// NewController creates a controller resting at vp.
func NewController(vp domain.Viewport) *Controller {
	return &Controller{rest: vp}
}

// Current returns the viewport at now.
func (c *Controller) Current(now time.Time) domain.Viewport {
	if c.active == nil {
		return c.rest
	}
	if c.active.Done(now) {
		c.rest = c.active.Path.to
		c.active = nil
		return c.rest
	}
	return c.active.At(now)
}

// Jump moves to vp at once, dropping any running transition.
func (c *Controller) Jump(vp domain.Viewport) {
	c.rest = vp
	c.active = nil
}

// TransitionTo starts a cubic in-out transition to target. It starts from the
// viewport at now, so a running transition is superseded without a jump.
func (c *Controller) TransitionTo(target domain.Viewport, now time.Time, d time.Duration) {
	from := c.Current(now)
	c.active = &Transition{
		Path:     Interpolate(from, target),
		Start:    now,
		Duration: d,
		Ease:     ease.InOutCubic,
	}
	c.rest = target
}

// Target returns the viewport the controller is resting at or heading to.
func (c *Controller) Target() domain.Viewport {
	return c.rest
}

// Animating reports whether a transition is still running at now.
func (c *Controller) Animating(now time.Time) bool {
	return c.active != nil && !c.active.Done(now)
}
