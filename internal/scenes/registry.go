// Package scenes holds the scripted productions: each scene wires a
// parameter store, reactive bindings and a director script into a playable
// animation.
package scenes

import (
	"fmt"
	"sort"

	"github.com/voltlab/electroanim/internal/anim"
	"github.com/voltlab/electroanim/internal/config"
	"github.com/voltlab/electroanim/internal/metrics"
	"github.com/voltlab/electroanim/internal/param"
	"github.com/voltlab/electroanim/internal/scene"
)

// Production is a fully wired scene ready to play.
type Production struct {
	Name     string
	Scene    *scene.Scene
	Store    *param.Store
	Director *anim.Director
	Metrics  []metrics.Metric

	// Snapshot returns the current parameter values plus the scene's derived
	// quantities, for metric observation.
	Snapshot func() map[string]float64
}

// ObserveSink returns a frame sink feeding the production's metrics from
// its snapshot once per frame.
func (p *Production) ObserveSink() anim.FrameSink {
	return anim.SinkFunc(func(f *anim.Frame) error {
		metrics.Observe(p.Metrics, f.Time, p.Snapshot())
		return nil
	})
}

// Builder constructs a production from a config.
type Builder func(cfg *config.Config) (*Production, error)

type Registry struct {
	builders map[string]Builder
}

func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]Builder)}
	r.builders["voltage_divider"] = VoltageDivider
	r.builders["regulator_comparison"] = RegulatorComparison
	return r
}

func (r *Registry) Get(name string, cfg *config.Config) (*Production, error) {
	fn, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %s", name)
	}
	return fn(cfg)
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
