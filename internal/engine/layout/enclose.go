package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// enclose returns the smallest circle containing every circle, using
// Welzl's algorithm over a shuffled copy of the input.
func enclose(circles []*circle, random func() float64) circle {
	cs := shuffle(append([]*circle(nil), circles...), random)

	var basis []*circle
	var e circle
	have := false
	for i := 0; i < len(cs); {
		p := cs[i]
		if have && enclosesWeak(&e, p) {
			i++
			continue
		}
		basis = extendBasis(basis, p)
		e = encloseBasis(basis)
		have = true
		i = 0
	}
	return e
}

func extendBasis(basis []*circle, p *circle) []*circle {
	if enclosesWeakAll(p, basis) {
		return []*circle{p}
	}

	for _, b := range basis {
		if enclosesNot(p, b) {
			if e := encloseBasis2(b, p); enclosesWeakAll(&e, basis) {
				return []*circle{b, p}
			}
		}
	}

	for i := 0; i < len(basis)-1; i++ {
		for j := i + 1; j < len(basis); j++ {
			bi, bj := basis[i], basis[j]
			eij, eip, ejp := encloseBasis2(bi, bj), encloseBasis2(bi, p), encloseBasis2(bj, p)
			if enclosesNot(&eij, p) && enclosesNot(&eip, bj) && enclosesNot(&ejp, bi) {
				if e := encloseBasis3(bi, bj, p); enclosesWeakAll(&e, basis) {
					return []*circle{bi, bj, p}
				}
			}
		}
	}

	// Degenerate input.
	return []*circle{p}
}

func enclosesNot(a, b *circle) bool {
	dr := a.r - b.r
	return dr < 0 || dr*dr < r2.Norm2(r2.Sub(b.p, a.p))
}

func enclosesWeak(a, b *circle) bool {
	dr := a.r - b.r + math.Max(math.Max(a.r, b.r), 1)*1e-9
	return dr > 0 && dr*dr > r2.Norm2(r2.Sub(b.p, a.p))
}

func enclosesWeakAll(a *circle, basis []*circle) bool {
	for _, b := range basis {
		if !enclosesWeak(a, b) {
			return false
		}
	}
	return true
}

func encloseBasis(basis []*circle) circle {
	switch len(basis) {
	case 1:
		return *basis[0]
	case 2:
		return encloseBasis2(basis[0], basis[1])
	default:
		return encloseBasis3(basis[0], basis[1], basis[2])
	}
}

func encloseBasis2(a, b *circle) circle {
	d := r2.Sub(b.p, a.p)
	l := r2.Norm(d)
	dr := b.r - a.r
	return circle{
		p: r2.Vec{
			X: (a.p.X + b.p.X + d.X/l*dr) / 2,
			Y: (a.p.Y + b.p.Y + d.Y/l*dr) / 2,
		},
		r: (l + a.r + b.r) / 2,
	}
}

func encloseBasis3(a, b, c *circle) circle {
	x1, y1, r1 := a.p.X, a.p.Y, a.r
	x2, y2, r2v := b.p.X, b.p.Y, b.r
	x3, y3, r3 := c.p.X, c.p.Y, c.r

	a2 := x1 - x2
	a3 := x1 - x3
	b2 := y1 - y2
	b3 := y1 - y3
	c2 := r2v - r1
	c3 := r3 - r1
	d1 := x1*x1 + y1*y1 - r1*r1
	d2 := d1 - x2*x2 - y2*y2 + r2v*r2v
	d3 := d1 - x3*x3 - y3*y3 + r3*r3
	ab := a3*b2 - a2*b3
	xa := (b2*d3-b3*d2)/(ab*2) - x1
	xb := (b3*c2 - b2*c3) / ab
	ya := (a3*d2-a2*d3)/(ab*2) - y1
	yb := (a2*c3 - a3*c2) / ab
	qa := xb*xb + yb*yb - 1
	qb := 2 * (r1 + xa*xb + ya*yb)
	qc := xa*xa + ya*ya - r1*r1

	var r float64
	if math.Abs(qa) > 1e-6 {
		r = -(qb + math.Sqrt(qb*qb-4*qa*qc)) / (2 * qa)
	} else {
		r = -qc / qb
	}
	return circle{
		p: r2.Vec{X: x1 + xa + xb*r, Y: y1 + ya + yb*r},
		r: r,
	}
}

// lcg returns a linear congruential generator seeded with 1, so shuffles are
// the same on every run.
func lcg() func() float64 {
	const (
		a = 1664525
		c = 1013904223
		m = 1 << 32
	)
	var s uint64 = 1
	return func() float64 {
		s = (a*s + c) % m
		return float64(s) / m
	}
}

func shuffle(cs []*circle, random func() float64) []*circle {
	for m := len(cs); m > 0; {
		i := int(random() * float64(m))
		m--
		cs[m], cs[i] = cs[i], cs[m]
	}
	return cs
}
