package scenes

import (
	"context"
	"math"
	"testing"

	"github.com/voltlab/electroanim/internal/anim"
	"github.com/voltlab/electroanim/internal/config"
	"github.com/voltlab/electroanim/internal/metrics"
	"github.com/voltlab/electroanim/internal/viz"
)

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	names := r.List()
	if len(names) != 2 {
		t.Fatalf("got %d scenes, want 2", len(names))
	}
	if names[0] != "regulator_comparison" || names[1] != "voltage_divider" {
		t.Errorf("names = %v, want sorted", names)
	}
}

func TestRegistryUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("nonexistent", nil); err == nil {
		t.Error("expected error for unknown scene")
	}
}

func TestVoltageDividerBuilds(t *testing.T) {
	p, err := VoltageDivider(config.DefaultConfig())
	if err != nil {
		t.Fatalf("VoltageDivider: %v", err)
	}
	if p.Director.Duration() <= 0 {
		t.Error("script has no duration")
	}
	for _, name := range []string{"vin", "r1", "r2", "rl"} {
		if _, ok := p.Store.Lookup(name); !ok {
			t.Errorf("parameter %s not defined", name)
		}
	}
}

func TestVoltageDividerSnapshotDerivations(t *testing.T) {
	p, err := VoltageDivider(config.DefaultConfig())
	if err != nil {
		t.Fatalf("VoltageDivider: %v", err)
	}

	// vin 9, r1 10k, r2 10k, rl 1M
	vals := p.Snapshot()
	if math.Abs(vals["eff_r2"]-9900.990099) > 1e-4 {
		t.Errorf("eff_r2 = %v", vals["eff_r2"])
	}
	if math.Abs(vals["vout"]-4.477611) > 1e-4 {
		t.Errorf("vout = %v", vals["vout"])
	}
}

func TestVoltageDividerPlaysThrough(t *testing.T) {
	p, err := VoltageDivider(config.DefaultConfig())
	if err != nil {
		t.Fatalf("VoltageDivider: %v", err)
	}

	frames := 0
	err = p.Director.Run(context.Background(), anim.SinkFunc(func(f *anim.Frame) error {
		frames++
		metrics.Observe(p.Metrics, f.Time, p.Snapshot())
		return nil
	}))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	atLeast := int(p.Director.Duration() * float64(p.Director.FPS()))
	if frames < atLeast || frames > atLeast+2 {
		t.Errorf("got %d frames for %.2fs at %d fps", frames, p.Director.Duration(), p.Director.FPS())
	}

	// the script ends with vin swung to 7, r1 at 20k, rl at 20k
	if got := p.Store.Get("vin"); math.Abs(got-7) > 1e-9 {
		t.Errorf("final vin = %v, want 7", got)
	}
	if got := p.Store.Get("r1"); math.Abs(got-20000) > 1e-9 {
		t.Errorf("final r1 = %v, want 20000", got)
	}
	if got := p.Store.Get("rl"); math.Abs(got-20000) > 1e-9 {
		t.Errorf("final rl = %v, want 20000", got)
	}

	sums := metrics.Collect(p.Metrics)
	if math.IsNaN(sums["vout_min"]) || math.IsNaN(sums["vout_max"]) {
		t.Error("vout metrics never observed")
	}
	if sums["vout_min"] >= sums["vout_max"] {
		t.Errorf("vout swing collapsed: min %v max %v", sums["vout_min"], sums["vout_max"])
	}
}

func TestRegulatorComparisonPlaysThrough(t *testing.T) {
	cfg := config.GetPreset("regulator_comparison", "brownout")
	if cfg == nil {
		t.Fatal("preset missing")
	}
	p, err := RegulatorComparison(cfg)
	if err != nil {
		t.Fatalf("RegulatorComparison: %v", err)
	}

	if err := p.Director.Run(context.Background(), p.ObserveSink()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	sums := metrics.Collect(p.Metrics)
	// the full sweep lights all eight LEDs, sagging well past 3 V
	if !(sums["vdd_min"] < 3.0) {
		t.Errorf("vdd_min = %v, want below brown-out threshold", sums["vdd_min"])
	}
	if !(sums["vdd_max"] > 3.2) {
		t.Errorf("vdd_max = %v, want near the unloaded rail", sums["vdd_max"])
	}
}

func TestSchematicVariants(t *testing.T) {
	region := viz.Rect{X: 8, Y: 8, W: 80, H: 80}
	plain := Schematic(region, false)
	loaded := Schematic(region, true)

	pb, lb := plain.Bounds(), loaded.Bounds()
	if pb.Empty() || lb.Empty() {
		t.Fatal("schematic bounds empty")
	}
	if lb.W <= pb.W {
		t.Errorf("load branch should widen the schematic: %d vs %d", lb.W, pb.W)
	}

	c := viz.NewCanvas(60, 30)
	plain.Paint(c, 1)
	if c.String() == viz.NewCanvas(60, 30).String() {
		t.Error("schematic painted nothing")
	}
}
