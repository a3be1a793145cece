package scene

import (
	"math"

	"github.com/voltlab/electroanim/internal/viz"
)

// Pt is a sub-pixel canvas coordinate.
type Pt struct {
	X, Y int
}

// Fragment is an immutable piece of visual content. Fragments are rebuilt
// from scratch by redraw functions, never mutated in place.
type Fragment interface {
	Paint(c *viz.Canvas, opacity float64)
	Bounds() viz.Rect
}

// Partial is implemented by fragments that can reveal themselves
// progressively, for create-style animation.
type Partial interface {
	PaintPartial(c *viz.Canvas, opacity, progress float64)
}

// Polyline is a connected sequence of line segments.
type Polyline struct {
	Pts []Pt
}

func (p *Polyline) Paint(c *viz.Canvas, opacity float64) {
	p.PaintPartial(c, opacity, 1)
}

// PaintPartial draws the leading fraction of the polyline's segments.
func (p *Polyline) PaintPartial(c *viz.Canvas, opacity, progress float64) {
	if len(p.Pts) < 2 || progress <= 0 {
		if len(p.Pts) == 1 && progress > 0 {
			c.SetA(p.Pts[0].X, p.Pts[0].Y, opacity)
		}
		return
	}
	if progress > 1 {
		progress = 1
	}
	n := int(math.Ceil(progress * float64(len(p.Pts)-1)))
	for i := 0; i < n; i++ {
		a, b := p.Pts[i], p.Pts[i+1]
		c.DrawLineA(a.X, a.Y, b.X, b.Y, opacity)
	}
}

func (p *Polyline) Bounds() viz.Rect {
	if len(p.Pts) == 0 {
		return viz.Rect{}
	}
	minX, minY := p.Pts[0].X, p.Pts[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.Pts[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	return viz.Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}

// Text places a string at a character cell. The label overlay cannot dither,
// so text appears once opacity crosses one half.
type Text struct {
	Col, Row int
	S        string
}

func (t *Text) Paint(c *viz.Canvas, opacity float64) {
	if opacity < 0.5 {
		return
	}
	c.Label(t.Col, t.Row, t.S)
}

func (t *Text) Bounds() viz.Rect {
	return viz.Rect{X: t.Col * 2, Y: t.Row * 4, W: len([]rune(t.S)) * 2, H: 4}
}

// Box is a rectangle outline.
type Box struct {
	R viz.Rect
}

func (b *Box) Paint(c *viz.Canvas, opacity float64) { c.DrawRect(b.R, opacity) }
func (b *Box) Bounds() viz.Rect                     { return b.R }

// Ellipse is an ellipse outline inscribed in R.
type Ellipse struct {
	R viz.Rect
}

func (e *Ellipse) Paint(c *viz.Canvas, opacity float64) { c.DrawEllipse(e.R, opacity) }
func (e *Ellipse) Bounds() viz.Rect                     { return e.R }

// Group paints its children in order.
type Group struct {
	Items []Fragment
}

func NewGroup(items ...Fragment) *Group { return &Group{Items: items} }

func (g *Group) Paint(c *viz.Canvas, opacity float64) {
	for _, f := range g.Items {
		f.Paint(c, opacity)
	}
}

// PaintPartial reveals children in order, splitting progress evenly across
// them, so a composite traces out piece by piece.
func (g *Group) PaintPartial(c *viz.Canvas, opacity, progress float64) {
	n := len(g.Items)
	if n == 0 || progress <= 0 {
		return
	}
	per := 1.0 / float64(n)
	for i, f := range g.Items {
		local := (progress - float64(i)*per) / per
		if local <= 0 {
			return
		}
		if local > 1 {
			local = 1
		}
		if p, ok := f.(Partial); ok {
			p.PaintPartial(c, opacity, local)
			continue
		}
		if local >= 1 {
			f.Paint(c, opacity)
			continue
		}
		f.Paint(c, opacity*local)
	}
}

func (g *Group) Bounds() viz.Rect {
	var r viz.Rect
	for _, f := range g.Items {
		r = r.Union(f.Bounds())
	}
	return r
}
