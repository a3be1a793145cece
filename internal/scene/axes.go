package scene

import "github.com/voltlab/electroanim/internal/viz"

// Axes maps data coordinates onto a sub-pixel region of the canvas. It is a
// layout helper, not an element: bindings use it to build plot fragments in
// canvas space each frame.
type Axes struct {
	Region                 viz.Rect
	XMin, XMax, YMin, YMax float64
}

// Pt converts a data coordinate to a sub-pixel canvas point. Values outside
// the axis ranges clamp to the region edge.
func (a Axes) Pt(x, y float64) Pt {
	u := (x - a.XMin) / (a.XMax - a.XMin)
	v := (y - a.YMin) / (a.YMax - a.YMin)
	if u < 0 {
		u = 0
	}
	if u > 1 {
		u = 1
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	px := a.Region.X + int(u*float64(a.Region.W-1)+0.5)
	py := a.Region.Y + a.Region.H - 1 - int(v*float64(a.Region.H-1)+0.5)
	return Pt{X: px, Y: py}
}

// Frame returns the axis frame: region border plus the y=0 gridline when
// zero lies inside the y range.
func (a Axes) Frame() Fragment {
	items := []Fragment{&Box{R: a.Region}}
	if a.YMin < 0 && a.YMax > 0 {
		l := a.Pt(a.XMin, 0)
		r := a.Pt(a.XMax, 0)
		items = append(items, &Polyline{Pts: []Pt{l, r}})
	}
	return NewGroup(items...)
}

// Plot samples f across the x range at n points and returns the curve.
func (a Axes) Plot(f func(float64) float64, n int) *Polyline {
	if n < 2 {
		n = 2
	}
	pts := make([]Pt, 0, n)
	for i := 0; i < n; i++ {
		x := a.XMin + (a.XMax-a.XMin)*float64(i)/float64(n-1)
		pts = append(pts, a.Pt(x, f(x)))
	}
	return &Polyline{Pts: pts}
}

// HLine returns a horizontal line across the full x range at data height y.
func (a Axes) HLine(y float64) *Polyline {
	return &Polyline{Pts: []Pt{a.Pt(a.XMin, y), a.Pt(a.XMax, y)}}
}

// Steps returns a staircase through the given samples: flat at each y with a
// vertical riser to the next.
func (a Axes) Steps(xs, ys []float64) *Polyline {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 0 {
		return &Polyline{}
	}
	pts := make([]Pt, 0, 2*n)
	for i := 0; i < n; i++ {
		pts = append(pts, a.Pt(xs[i], ys[i]))
		if i+1 < n {
			pts = append(pts, a.Pt(xs[i+1], ys[i]))
		}
	}
	return &Polyline{Pts: pts}
}
