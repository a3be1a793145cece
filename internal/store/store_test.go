package store

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/voltlab/electroanim/internal/anim"
	"github.com/voltlab/electroanim/internal/export"
	"github.com/voltlab/electroanim/internal/param"
)

func sampleTrace(t *testing.T) *export.Trace {
	t.Helper()
	ps := param.NewStore()
	ps.Define("vin", 9)
	ps.Define("r2", 10000)

	tr := export.NewTrace(ps)
	for i := 0; i < 4; i++ {
		ps.Set("r2", 10000+float64(i)*1000)
		if err := tr.WriteFrame(&anim.Frame{Index: i, Time: float64(i) * 0.1}); err != nil {
			t.Fatalf("WriteFrame: %v", err)
		}
	}
	return tr
}

func TestSaveAndLoad(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	id, err := s.Save("voltage_divider", 30, 0.3, map[string]float64{"vout_max": 4.48}, sampleTrace(t))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(id, "voltage_divider_") {
		t.Errorf("render id = %q, want voltage_divider_ prefix", id)
	}

	meta, err := s.Load(id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Scene != "voltage_divider" {
		t.Errorf("Scene = %q", meta.Scene)
	}
	if meta.FPS != 30 || meta.Frames != 4 {
		t.Errorf("FPS = %d, Frames = %d, want 30, 4", meta.FPS, meta.Frames)
	}
	if math.Abs(meta.Metrics["vout_max"]-4.48) > 1e-9 {
		t.Errorf("vout_max metric = %v", meta.Metrics["vout_max"])
	}
}

func TestLoadTraceRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	id, err := s.Save("voltage_divider", 30, 0.3, nil, sampleTrace(t))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	names, times, rows, err := s.LoadTrace(id)
	if err != nil {
		t.Fatalf("LoadTrace: %v", err)
	}
	if len(names) != 2 || names[0] != "vin" || names[1] != "r2" {
		t.Errorf("names = %v", names)
	}
	if len(times) != 4 || len(rows) != 4 {
		t.Fatalf("got %d times, %d rows, want 4 each", len(times), len(rows))
	}
	if math.Abs(rows[3][1]-13000) > 1e-6 {
		t.Errorf("rows[3] r2 = %v, want 13000", rows[3][1])
	}
	if math.Abs(times[2]-0.2) > 1e-6 {
		t.Errorf("times[2] = %v, want 0.2", times[2])
	}
}

func TestListSorted(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Save("a", 30, 0.3, nil, sampleTrace(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := s.Save("b", 30, 0.3, nil, sampleTrace(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].Timestamp.Before(runs[i-1].Timestamp) {
			t.Error("runs not sorted by timestamp")
		}
	}
}

func TestListEmptyDir(t *testing.T) {
	s := New(t.TempDir() + "/never-created")
	runs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if runs != nil {
		t.Errorf("runs = %v, want nil", runs)
	}
}

func TestLoadMissing(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Load("nope"); err == nil {
		t.Error("Load on missing render should fail")
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	meta := &RenderMetadata{ID: "x_1", Scene: "x", FPS: 30}
	if err := ExportJSON(&buf, meta); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"scene": "x"`) {
		t.Errorf("output missing scene field: %s", buf.String())
	}
}
