package anim

import (
	"github.com/voltlab/electroanim/internal/scene"
)

// Reusable animation helpers. These encapsulate the common emphasis and
// pacing patterns so scene scripts stay concise and consistent.

// Pop briefly pulses an element to draw the eye to it.
func Pop(el *scene.Element, dur float64) Step {
	if dur <= 0 {
		dur = 0.5
	}
	return &popStep{el: el, dur: dur}
}

// Ring draws a temporary outline around an element and fades it away. The
// outline lives in the scene only for the duration of the step.
func Ring(sc *scene.Scene, el *scene.Element, dur float64) Step {
	if dur <= 0 {
		dur = 0.6
	}
	return &ringStep{sc: sc, target: el, dur: dur}
}

// Beat pauses for a short moment; small waits between animations improve
// pacing.
func Beat(t float64) Step {
	if t <= 0 {
		t = 0.2
	}
	return &Pause{Dur: t}
}

// Combo staggers several steps into one group: each child starts after
// lagRatio of the combined duration of the children before it, giving a
// pleasing overlap between consecutive effects.
func Combo(lagRatio float64, steps ...Step) Step {
	children := make([]staggerChild, len(steps))
	offset := 0.0
	for i, st := range steps {
		children[i] = staggerChild{step: st, offset: offset}
		offset += lagRatio * st.Duration()
	}
	return &staggerStep{children: children}
}

type ringStep struct {
	sc     *scene.Scene
	target *scene.Element
	dur    float64

	t0   float64
	ring *scene.Element
}

func (r *ringStep) Begin(t0 float64) {
	r.t0 = t0
	bounds := r.target.Bounds().Grow(6)
	r.ring = r.sc.Add(r.target.ID()+"/ring", &scene.Ellipse{R: bounds}).SetZ(100)
	r.ring.SetOpacity(0)
}

func (r *ringStep) Advance(now float64) {
	u := progress(now, r.t0, r.dur)
	if u >= 1 {
		if r.ring != nil {
			r.sc.Remove(r.ring)
			r.ring = nil
		}
		return
	}
	// rise quickly, linger, fade
	switch {
	case u < 0.25:
		r.ring.SetOpacity(u / 0.25)
	case u < 0.6:
		r.ring.SetOpacity(1)
	default:
		r.ring.SetOpacity(1 - (u-0.6)/0.4)
	}
}

func (r *ringStep) Duration() float64 { return r.dur }

type staggerChild struct {
	step   Step
	offset float64
	begun  bool
}

type staggerStep struct {
	children []staggerChild
	t0       float64
}

func (s *staggerStep) Begin(t0 float64) {
	s.t0 = t0
	for i := range s.children {
		s.children[i].begun = false
	}
}

func (s *staggerStep) Advance(now float64) {
	for i := range s.children {
		c := &s.children[i]
		start := s.t0 + c.offset
		if now < start {
			continue
		}
		if !c.begun {
			c.step.Begin(start)
			c.begun = true
		}
		c.step.Advance(now)
	}
}

func (s *staggerStep) Duration() float64 {
	max := 0.0
	for _, c := range s.children {
		if d := c.offset + c.step.Duration(); d > max {
			max = d
		}
	}
	return max
}
