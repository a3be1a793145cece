package param

import (
	"math"
	"testing"
)

func TestDefineGetSet(t *testing.T) {
	s := NewStore()
	s.Define("vin", 9.0)
	s.Define("r1", 10000.0)

	if got := s.Get("vin"); got != 9.0 {
		t.Errorf("expected 9.0, got %f", got)
	}

	s.Set("vin", 12.0)
	if got := s.Get("vin"); got != 12.0 {
		t.Errorf("expected 12.0 after set, got %f", got)
	}

	if _, ok := s.Lookup("nope"); ok {
		t.Error("expected lookup miss for undefined parameter")
	}
}

func TestNamesOrder(t *testing.T) {
	s := NewStore()
	s.Define("vin", 9)
	s.Define("r1", 1)
	s.Define("r2", 2)

	names := s.Names()
	want := []string{"vin", "r1", "r2"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.Define("vin", 9.0)

	snap := s.Snapshot()
	snap["vin"] = 0

	if got := s.Get("vin"); got != 9.0 {
		t.Errorf("snapshot mutation leaked into store: %f", got)
	}
}

func TestGetUndefinedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for undefined parameter")
		}
	}()
	NewStore().Get("missing")
}

func TestTweenEndpoints(t *testing.T) {
	s := NewStore()
	s.Define("r2", 10000.0)

	tw := s.Interpolate("r2", 20000.0, 4.0, Linear)
	tw.Begin(1.0)

	tw.Advance(1.0)
	if got := s.Get("r2"); math.Abs(got-10000) > 1e-12 {
		t.Errorf("expected start value at t0, got %f", got)
	}

	tw.Advance(3.0)
	if got := s.Get("r2"); math.Abs(got-15000) > 1e-9 {
		t.Errorf("expected midpoint 15000, got %f", got)
	}

	tw.Advance(5.0)
	if got := s.Get("r2"); got != 20000 {
		t.Errorf("expected exact target at end, got %f", got)
	}

	tw.Advance(99.0)
	if got := s.Get("r2"); got != 20000 {
		t.Errorf("expected clamp past end, got %f", got)
	}
}

func TestTweenCapturesStartAtBegin(t *testing.T) {
	s := NewStore()
	s.Define("rl", 1_000_000.0)

	tw := s.Interpolate("rl", 2000.0, 5.0, nil)
	s.Set("rl", 20000.0) // mutated between declaration and begin
	tw.Begin(0)
	tw.Advance(0)

	if got := s.Get("rl"); math.Abs(got-20000) > 1e-9 {
		t.Errorf("expected start captured at Begin, got %f", got)
	}
}

func TestZeroDurationTween(t *testing.T) {
	s := NewStore()
	s.Define("vin", 9.0)

	tw := s.Interpolate("vin", 7.0, 0, nil)
	tw.Begin(2.5)
	tw.Advance(2.5)

	if got := s.Get("vin"); got != 7.0 {
		t.Errorf("expected immediate target for zero duration, got %f", got)
	}
}

func TestEasingBounds(t *testing.T) {
	eases := map[string]EaseFunc{
		"linear":    Linear,
		"smooth":    Smooth,
		"ease_out":  EaseOut,
		"ease_info": EaseInOut,
	}
	for name, f := range eases {
		if v := f(0); math.Abs(v) > 1e-12 {
			t.Errorf("%s(0) = %f, expected 0", name, v)
		}
		if v := f(1); math.Abs(v-1) > 1e-12 {
			t.Errorf("%s(1) = %f, expected 1", name, v)
		}
		prev := f(0)
		for u := 0.05; u <= 1.0001; u += 0.05 {
			v := f(u)
			if v < prev-1e-12 {
				t.Errorf("%s not monotonic at u=%.2f", name, u)
			}
			prev = v
		}
	}
}
