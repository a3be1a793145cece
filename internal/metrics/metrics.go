// Package metrics provides per-frame observers over parameter traces.
// Metrics are observed once per rendered frame and summarized into the
// render metadata.
package metrics

import "math"

type Metric interface {
	Name() string
	Observe(t float64, vals map[string]float64)
	Value() float64
	Reset()
}

// Min tracks the smallest observed value of one parameter.
type Min struct {
	Param string
	min   float64
	seen  bool
}

func NewMin(p string) *Min { return &Min{Param: p} }

func (m *Min) Name() string { return m.Param + "_min" }

func (m *Min) Observe(t float64, vals map[string]float64) {
	v, ok := vals[m.Param]
	if !ok {
		return
	}
	if !m.seen || v < m.min {
		m.min = v
		m.seen = true
	}
}

func (m *Min) Value() float64 {
	if !m.seen {
		return math.NaN()
	}
	return m.min
}

func (m *Min) Reset() { m.seen = false }

// Max tracks the largest observed value of one parameter.
type Max struct {
	Param string
	max   float64
	seen  bool
}

func NewMax(p string) *Max { return &Max{Param: p} }

func (m *Max) Name() string { return m.Param + "_max" }

func (m *Max) Observe(t float64, vals map[string]float64) {
	v, ok := vals[m.Param]
	if !ok {
		return
	}
	if !m.seen || v > m.max {
		m.max = v
		m.seen = true
	}
}

func (m *Max) Value() float64 {
	if !m.seen {
		return math.NaN()
	}
	return m.max
}

func (m *Max) Reset() { m.seen = false }

// PeakToPeak tracks the total swing of one parameter over the render.
type PeakToPeak struct {
	min Min
	max Max
}

func NewPeakToPeak(p string) *PeakToPeak {
	return &PeakToPeak{min: Min{Param: p}, max: Max{Param: p}}
}

func (m *PeakToPeak) Name() string { return m.min.Param + "_p2p" }

func (m *PeakToPeak) Observe(t float64, vals map[string]float64) {
	m.min.Observe(t, vals)
	m.max.Observe(t, vals)
}

func (m *PeakToPeak) Value() float64 {
	lo, hi := m.min.Value(), m.max.Value()
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return math.NaN()
	}
	return hi - lo
}

func (m *PeakToPeak) Reset() {
	m.min.Reset()
	m.max.Reset()
}

// Observe feeds one snapshot to every metric.
func Observe(ms []Metric, t float64, vals map[string]float64) {
	for _, m := range ms {
		m.Observe(t, vals)
	}
}

// Collect summarizes metric values by name.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
