package metrics

import (
	"math"
	"testing"
)

func feed(m Metric, vals ...float64) {
	for i, v := range vals {
		m.Observe(float64(i), map[string]float64{"vout": v})
	}
}

func TestMinMax(t *testing.T) {
	mn := NewMin("vout")
	mx := NewMax("vout")
	for _, m := range []Metric{mn, mx} {
		feed(m, 4.5, 2.9, 6.1, 3.0)
	}

	if got := mn.Value(); got != 2.9 {
		t.Errorf("expected min 2.9, got %f", got)
	}
	if got := mx.Value(); got != 6.1 {
		t.Errorf("expected max 6.1, got %f", got)
	}
}

func TestPeakToPeak(t *testing.T) {
	m := NewPeakToPeak("vout")
	feed(m, 4.5, 2.9, 6.1)

	if got := m.Value(); math.Abs(got-3.2) > 1e-12 {
		t.Errorf("expected p2p 3.2, got %f", got)
	}
	if m.Name() != "vout_p2p" {
		t.Errorf("unexpected name %s", m.Name())
	}
}

func TestUnobservedIsNaN(t *testing.T) {
	if !math.IsNaN(NewMin("vout").Value()) {
		t.Error("expected NaN before any observation")
	}
}

func TestReset(t *testing.T) {
	m := NewMax("vout")
	feed(m, 9.0)
	m.Reset()
	if !math.IsNaN(m.Value()) {
		t.Error("expected NaN after reset")
	}
}

func TestObserveIgnoresMissingParam(t *testing.T) {
	m := NewMin("vdd")
	m.Observe(0, map[string]float64{"vout": 1})
	if !math.IsNaN(m.Value()) {
		t.Error("metric observed a parameter it does not track")
	}
}

func TestCollect(t *testing.T) {
	ms := []Metric{NewMin("vout"), NewMax("vout")}
	Observe(ms, 0, map[string]float64{"vout": 5})
	got := Collect(ms)
	if got["vout_min"] != 5 || got["vout_max"] != 5 {
		t.Errorf("collect wrong: %v", got)
	}
}
