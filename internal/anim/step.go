package anim

import (
	"math"

	"github.com/voltlab/electroanim/internal/param"
	"github.com/voltlab/electroanim/internal/scene"
)

// Step is one scripted animation instruction. The director begins a step at
// its group's start time, then advances it once per rendered frame. Advance
// past the end must land exactly on the final state; the director guarantees
// one Advance at or beyond the end time.
//
// [param.Tween] satisfies Step, so parameter interpolations mix freely with
// visual steps in one group.
type Step interface {
	Begin(t0 float64)
	Advance(now float64)
	Duration() float64
}

// Pause holds the scene for a fixed time.
type Pause struct {
	Dur float64
}

func (p *Pause) Begin(t0 float64)   {}
func (p *Pause) Advance(now float64) {}
func (p *Pause) Duration() float64  { return p.Dur }

// fadeStep eases an element's opacity to a target.
type fadeStep struct {
	el   *scene.Element
	to   float64
	dur  float64
	t0   float64
	from float64
}

// FadeTo transitions el's opacity to the given target.
func FadeTo(el *scene.Element, to, dur float64) Step {
	return &fadeStep{el: el, to: to, dur: dur}
}

// FadeIn brings an element to full opacity.
func FadeIn(el *scene.Element, dur float64) Step { return FadeTo(el, 1, dur) }

// FadeOut takes an element to zero opacity.
func FadeOut(el *scene.Element, dur float64) Step { return FadeTo(el, 0, dur) }

func (f *fadeStep) Begin(t0 float64) {
	f.t0 = t0
	f.from = f.el.Opacity()
}

func (f *fadeStep) Advance(now float64) {
	u := progress(now, f.t0, f.dur)
	f.el.SetOpacity(f.from + (f.to-f.from)*param.Smooth(u))
}

func (f *fadeStep) Duration() float64 { return f.dur }

// createStep reveals an element's fragment progressively, stroke first.
type createStep struct {
	el  *scene.Element
	dur float64
	t0  float64
}

// Create draws an element into the scene progressively, the way a plot or
// axis frame is traced out.
func Create(el *scene.Element, dur float64) Step {
	return &createStep{el: el, dur: dur}
}

func (c *createStep) Begin(t0 float64) {
	c.t0 = t0
	c.el.SetOpacity(1)
	c.el.SetReveal(0)
}

func (c *createStep) Advance(now float64) {
	c.el.SetReveal(progress(now, c.t0, c.dur))
}

func (c *createStep) Duration() float64 { return c.dur }

// morphStep cross-fades an element to a replacement fragment: the old
// content fades out over the first half, the new content fades in over the
// second.
type morphStep struct {
	el  *scene.Element
	to  scene.Fragment
	dur float64

	t0      float64
	from    float64
	swapped bool
}

// Morph replaces el's fragment with a cross-fade, the transform analogue for
// swapping the unloaded circuit for the loaded one.
func Morph(el *scene.Element, to scene.Fragment, dur float64) Step {
	return &morphStep{el: el, to: to, dur: dur}
}

func (m *morphStep) Begin(t0 float64) {
	m.t0 = t0
	m.from = m.el.Opacity()
	m.swapped = false
}

func (m *morphStep) Advance(now float64) {
	u := progress(now, m.t0, m.dur)
	if u < 0.5 {
		m.el.SetOpacity(m.from * (1 - 2*u))
		return
	}
	if !m.swapped {
		m.el.SetFragment(m.to)
		m.swapped = true
	}
	m.el.SetOpacity(2*u - 1)
}

func (m *morphStep) Duration() float64 { return m.dur }

// popStep briefly pulses an element's opacity for emphasis.
type popStep struct {
	el   *scene.Element
	dur  float64
	t0   float64
	base float64
}

func (p *popStep) Begin(t0 float64) {
	p.t0 = t0
	p.base = p.el.Opacity()
}

func (p *popStep) Advance(now float64) {
	u := progress(now, p.t0, p.dur)
	if u >= 1 {
		p.el.SetOpacity(p.base)
		return
	}
	p.el.SetOpacity(p.base * (1 - 0.6*math.Sin(math.Pi*u)))
}

func (p *popStep) Duration() float64 { return p.dur }

// progress maps a clock time to normalized step progress in [0,1].
func progress(now, t0, dur float64) float64 {
	if dur <= 0 || now >= t0+dur {
		return 1
	}
	u := (now - t0) / dur
	if u < 0 {
		return 0
	}
	return u
}
