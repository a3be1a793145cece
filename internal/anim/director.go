// Package anim provides the animation director: a fixed, hand-authored
// sequence of parameter interpolations, visual effects and pauses, executed
// open-loop against a scene at a fixed frame rate. Steps grouped in one Play
// call share a start time and run concurrently; groups run strictly in
// sequence, each completing before the next begins.
package anim

import (
	"context"
	"fmt"

	"github.com/voltlab/electroanim/internal/scene"
	"github.com/voltlab/electroanim/internal/viz"
)

// Frame is one rendered output frame. The canvas is owned by the director
// and reused between frames; sinks must consume it before returning.
type Frame struct {
	Index  int
	Time   float64
	Canvas *viz.Canvas
}

// FrameSink consumes rendered frames.
type FrameSink interface {
	WriteFrame(f *Frame) error
}

// SinkFunc adapts a function to the FrameSink interface.
type SinkFunc func(f *Frame) error

func (fn SinkFunc) WriteFrame(f *Frame) error { return fn(f) }

type group struct {
	steps []Step
	dur   float64
}

// Director schedules and plays the scripted animation.
type Director struct {
	sc     *scene.Scene
	fps    int
	canvas *viz.Canvas
	groups []group

	clock      float64
	frame      int
	gi         int
	groupStart float64
	begun      bool
	done       bool
}

// New creates a director for the scene rendering w x h character cells at
// the given frame rate.
func New(sc *scene.Scene, w, h, fps int) *Director {
	if fps <= 0 {
		fps = 30
	}
	return &Director{
		sc:     sc,
		fps:    fps,
		canvas: viz.NewCanvas(w, h),
	}
}

func (d *Director) Scene() *scene.Scene { return d.sc }
func (d *Director) FPS() int            { return d.fps }
func (d *Director) Dt() float64         { return 1 / float64(d.fps) }
func (d *Director) Clock() float64      { return d.clock }

// Play queues one group of steps to run concurrently: same start time,
// independent durations. The group completes when its longest step does.
func (d *Director) Play(steps ...Step) {
	if len(steps) == 0 {
		return
	}
	g := group{steps: steps}
	for _, s := range steps {
		if s.Duration() > g.dur {
			g.dur = s.Duration()
		}
	}
	d.groups = append(d.groups, g)
}

// Wait queues a pause group.
func (d *Director) Wait(seconds float64) {
	d.Play(&Pause{Dur: seconds})
}

// Duration returns the total scripted duration in seconds.
func (d *Director) Duration() float64 {
	total := 0.0
	for _, g := range d.groups {
		total += g.dur
	}
	return total
}

// Finished reports whether the whole script has played out.
func (d *Director) Finished() bool {
	return d.gi >= len(d.groups)
}

// Advance moves the clock forward one frame, sampling every active step
// once. It returns false once the script is exhausted; the frame rendered
// after the last true return holds the final state of every step.
func (d *Director) Advance() bool {
	if d.done {
		return false
	}
	if d.Finished() {
		d.done = true
		return false
	}

	// derive the clock from the frame index so frame counts stay exact
	d.frame++
	d.clock = float64(d.frame) / float64(d.fps)

	for d.gi < len(d.groups) {
		g := &d.groups[d.gi]
		if !d.begun {
			for _, s := range g.steps {
				s.Begin(d.groupStart)
			}
			d.begun = true
		}

		end := d.groupStart + g.dur
		if d.clock < end {
			for _, s := range g.steps {
				s.Advance(d.clock)
			}
			return true
		}

		// land every step exactly on its final state before moving on
		for _, s := range g.steps {
			s.Advance(end)
		}
		d.gi++
		d.groupStart = end
		d.begun = false
	}
	return true
}

// Frame renders the current scene state. Any binding failure is fatal.
func (d *Director) Frame() (*Frame, error) {
	if err := d.sc.Render(d.canvas); err != nil {
		return nil, err
	}
	return &Frame{Index: d.frame, Time: d.clock, Canvas: d.canvas}, nil
}

// Run plays the whole script frame-synchronously, emitting every frame
// (including the initial state) to the sink. The context is checked once
// per frame; cancellation aborts the run.
func (d *Director) Run(ctx context.Context, sink FrameSink) error {
	emit := func() error {
		f, err := d.Frame()
		if err != nil {
			return err
		}
		if sink == nil {
			return nil
		}
		if err := sink.WriteFrame(f); err != nil {
			return fmt.Errorf("anim: sink: %w", err)
		}
		return nil
	}

	if err := emit(); err != nil {
		return err
	}
	for d.Advance() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := emit(); err != nil {
			return err
		}
	}
	return nil
}
