// Package viewport animates the focused region of the packing frame and
// projects discs and labels onto the drawing surface.
package viewport

import (
	"math"
	"time"

	"go.trai.ch/bubbles/internal/core/domain"
)

const (
	rho     = math.Sqrt2
	rho2    = 2
	rho4    = 4
	epsilon = 1e-12
)

// Path is a smooth zoom between two viewports after van Wijk and Nuij.
// It pans and zooms together so the view never cuts between distant states.
type Path struct {
	from, to domain.Viewport
	dx, dy   float64
	s        float64
	r0       float64
	d1       float64
	flat     bool
	linear   bool
}

// Interpolate returns the zoom path from one viewport to another.
func Interpolate(from, to domain.Viewport) Path {
	p := Path{from: from, to: to, dx: to.X - from.X, dy: to.Y - from.Y}
	d2 := p.dx*p.dx + p.dy*p.dy
	w0, w1 := from.Diameter, to.Diameter

	if w0 <= 0 || w1 <= 0 {
		p.linear = true
		return p
	}
	if d2 < epsilon {
		p.flat = true
		p.s = math.Log(w1/w0) / rho
		return p
	}

	p.d1 = math.Sqrt(d2)
	b0 := (w1*w1 - w0*w0 + rho4*d2) / (2 * w0 * rho2 * p.d1)
	b1 := (w1*w1 - w0*w0 - rho4*d2) / (2 * w1 * rho2 * p.d1)
	p.r0 = math.Log(math.Sqrt(b0*b0+1) - b0)
	r1 := math.Log(math.Sqrt(b1*b1+1) - b1)
	p.s = (r1 - p.r0) / rho
	return p
}

// At returns the viewport at t in [0, 1]. Values outside are clamped.
func (p Path) At(t float64) domain.Viewport {
	switch {
	case t <= 0:
		return p.from
	case t >= 1:
		return p.to
	}

	w0 := p.from.Diameter
	if p.linear {
		return domain.Viewport{
			X:        p.from.X + t*p.dx,
			Y:        p.from.Y + t*p.dy,
			Diameter: w0 + t*(p.to.Diameter-w0),
		}
	}
	s := t * p.s
	if p.flat {
		return domain.Viewport{
			X:        p.from.X + t*p.dx,
			Y:        p.from.Y + t*p.dy,
			Diameter: w0 * math.Exp(rho*s),
		}
	}

	coshr0 := math.Cosh(p.r0)
	u := w0 / (rho2 * p.d1) * (coshr0*math.Tanh(rho*s+p.r0) - math.Sinh(p.r0))
	return domain.Viewport{
		X:        p.from.X + u*p.dx,
		Y:        p.from.Y + u*p.dy,
		Diameter: w0 * coshr0 / math.Cosh(rho*s+p.r0),
	}
}

// Duration is the path's natural duration, proportional to its length.
func (p Path) Duration() time.Duration {
	return time.Duration(math.Abs(p.s) * float64(time.Second))
}
