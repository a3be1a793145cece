// Package scene provides the scene graph: elements holding visual fragments,
// reactive redraw bindings re-evaluated once per rendered frame, and the
// frame renderer. A binding's output must be a pure function of the current
// parameter snapshot; the scene itself never mutates parameters.
package scene

import (
	"fmt"

	"github.com/voltlab/electroanim/internal/palette"
	"github.com/voltlab/electroanim/internal/viz"
)

// RedrawFunc builds a fresh fragment from current parameter values. Returning
// an error aborts the render; there is no recovery path.
type RedrawFunc func() (Fragment, error)

// Element is one visual item in the scene graph.
type Element struct {
	id      string
	z       int
	opacity float64
	reveal  float64
	frag    Fragment
	redraw  RedrawFunc
}

func (e *Element) ID() string            { return e.id }
func (e *Element) Opacity() float64      { return e.opacity }
func (e *Element) SetOpacity(a float64)  { e.opacity = clamp01(a) }
func (e *Element) Fragment() Fragment     { return e.frag }
func (e *Element) SetFragment(f Fragment) { e.frag = f }

// Reveal is the progressive-draw fraction in [0,1]; 1 means fully drawn.
// Fragments that implement Partial are clipped to the leading fraction,
// everything else dims proportionally.
func (e *Element) Reveal() float64     { return e.reveal }
func (e *Element) SetReveal(r float64) { e.reveal = clamp01(r) }

// SetZ sets the paint order (higher paints later) and returns the element
// for chaining at scene-build time.
func (e *Element) SetZ(z int) *Element {
	e.z = z
	return e
}

// Bounds returns the current fragment's bounds.
func (e *Element) Bounds() viz.Rect {
	if e.frag == nil {
		return viz.Rect{}
	}
	return e.frag.Bounds()
}

// Bound reports whether the element has a live redraw binding.
func (e *Element) Bound() bool { return e.redraw != nil }

// Scene is an ordered collection of elements over a background colour.
type Scene struct {
	Background string
	elements   []*Element
}

func New() *Scene {
	return &Scene{Background: palette.BG}
}

// Add inserts a fully visible static element.
func (s *Scene) Add(id string, f Fragment) *Element {
	el := &Element{id: id, opacity: 1, reveal: 1, frag: f}
	s.elements = append(s.elements, el)
	return el
}

// AddHidden inserts a static element at opacity zero, ready to be faded in.
func (s *Scene) AddHidden(id string, f Fragment) *Element {
	el := s.Add(id, f)
	el.opacity = 0
	return el
}

// Bind inserts an element whose fragment is rebuilt by fn once per rendered
// frame, for as long as the element stays in the scene.
func (s *Scene) Bind(id string, fn RedrawFunc) *Element {
	el := &Element{id: id, opacity: 1, reveal: 1, redraw: fn}
	s.elements = append(s.elements, el)
	return el
}

// BindHidden is Bind at opacity zero.
func (s *Scene) BindHidden(id string, fn RedrawFunc) *Element {
	el := s.Bind(id, fn)
	el.opacity = 0
	return el
}

// Remove detaches the element from the scene graph, unbinding any redraw.
func (s *Scene) Remove(el *Element) {
	for i, e := range s.elements {
		if e == el {
			s.elements = append(s.elements[:i], s.elements[i+1:]...)
			return
		}
	}
}

// Elements returns the live elements in insertion order.
func (s *Scene) Elements() []*Element {
	out := make([]*Element, len(s.elements))
	copy(out, s.elements)
	return out
}

// Render evaluates every live binding exactly once, in insertion order, then
// paints all fragments in z order onto the canvas. Binding failures are
// fatal and abort the frame.
func (s *Scene) Render(c *viz.Canvas) error {
	c.Clear()

	for _, el := range s.elements {
		if el.redraw == nil {
			continue
		}
		frag, err := el.redraw()
		if err != nil {
			return fmt.Errorf("scene: redraw %q: %w", el.id, err)
		}
		el.frag = frag
	}

	for _, el := range s.sortedByZ() {
		if el.frag == nil || el.opacity <= 0 || el.reveal <= 0 {
			continue
		}
		if el.reveal < 1 {
			if p, ok := el.frag.(Partial); ok {
				p.PaintPartial(c, el.opacity, el.reveal)
			} else {
				el.frag.Paint(c, el.opacity*el.reveal)
			}
			continue
		}
		el.frag.Paint(c, el.opacity)
	}
	return nil
}

// sortedByZ returns elements ordered by z, stable in insertion order.
func (s *Scene) sortedByZ() []*Element {
	out := s.Elements()
	// insertion sort keeps equal-z elements in scene order
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].z > out[j].z; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func clamp01(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
