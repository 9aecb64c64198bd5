package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// chain is a link in the front chain, the circular list of circles on the
// outside of the packing so far.
type chain struct {
	c          *circle
	next, prev *chain
}

// packSiblings places circles tangent to each other around the origin and
// returns the radius of their enclosing circle, which is centered on the
// origin afterwards.
func packSiblings(circles []*circle, random func() float64) float64 {
	n := len(circles)
	if n == 0 {
		return 0
	}

	a := circles[0]
	a.p = r2.Vec{}
	if n == 1 {
		return a.r
	}

	b := circles[1]
	a.p = r2.Vec{X: -b.r}
	b.p = r2.Vec{X: a.r}
	if n == 2 {
		return a.r + b.r
	}

	place(b, a, circles[2])

	ca, cb, cc := &chain{c: a}, &chain{c: b}, &chain{c: circles[2]}
	ca.next, cc.prev = cb, cb
	cb.next, ca.prev = cc, cc
	cc.next, cb.prev = ca, ca
	na, nb := ca, cb

pack:
	for i := 3; i < n; i++ {
		place(na.c, nb.c, circles[i])
		nc := &chain{c: circles[i]}

		// Find the closest intersecting circle on the front chain, measured by
		// arc length in either direction.
		j, k := nb.next, na.prev
		sj, sk := nb.c.r, na.c.r
		for {
			if sj <= sk {
				if intersects(j.c, nc.c) {
					nb = j
					na.next, nb.prev = nb, na
					i--
					continue pack
				}
				sj += j.c.r
				j = j.next
			} else {
				if intersects(k.c, nc.c) {
					na = k
					na.next, nb.prev = nb, na
					i--
					continue pack
				}
				sk += k.c.r
				k = k.prev
			}
			if j == k.next {
				break
			}
		}

		nc.prev, nc.next = na, nb
		na.next, nb.prev = nc, nc
		nb = nc

		// Move the insertion point to the pair closest to the centroid.
		best := score(na)
		for c := nc.next; c != nb; c = c.next {
			if s := score(c); s < best {
				na, best = c, s
			}
		}
		nb = na.next
	}

	front := []*circle{nb.c}
	for c := nb.next; c != nb; c = c.next {
		front = append(front, c.c)
	}
	e := enclose(front, random)

	for _, c := range circles {
		c.p = r2.Sub(c.p, e.p)
	}
	return e.r
}

// place positions c tangent to both a and b.
func place(b, a, c *circle) {
	d := r2.Sub(b.p, a.p)
	d2 := r2.Norm2(d)
	if d2 == 0 {
		c.p = r2.Vec{X: a.p.X + c.r, Y: a.p.Y}
		return
	}

	a2 := (a.r + c.r) * (a.r + c.r)
	b2 := (b.r + c.r) * (b.r + c.r)
	if a2 > b2 {
		x := (d2 + b2 - a2) / (2 * d2)
		y := math.Sqrt(math.Max(0, b2/d2-x*x))
		c.p = r2.Vec{
			X: b.p.X - x*d.X - y*d.Y,
			Y: b.p.Y - x*d.Y + y*d.X,
		}
		return
	}
	x := (d2 + a2 - b2) / (2 * d2)
	y := math.Sqrt(math.Max(0, a2/d2-x*x))
	c.p = r2.Vec{
		X: a.p.X + x*d.X - y*d.Y,
		Y: a.p.Y + x*d.Y + y*d.X,
	}
}

func intersects(a, b *circle) bool {
	dr := a.r + b.r - 1e-6
	return dr > 0 && dr*dr > r2.Norm2(r2.Sub(b.p, a.p))
}

// score is the squared distance from the origin to the weighted midpoint of
// n and its successor.
func score(n *chain) float64 {
	a, b := n.c, n.next.c
	ab := a.r + b.r
	if ab == 0 {
		return r2.Norm2(a.p)
	}
	m := r2.Scale(1/ab, r2.Add(r2.Scale(b.r, a.p), r2.Scale(a.r, b.p)))
	return r2.Norm2(m)
}
