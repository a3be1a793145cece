package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/voltlab/electroanim/internal/anim"
	"github.com/voltlab/electroanim/internal/param"
	"github.com/voltlab/electroanim/internal/scene"
	"github.com/voltlab/electroanim/internal/viz"
)

func testFrame() *anim.Frame {
	c := viz.NewCanvas(10, 4)
	c.DrawLine(0, 0, 19, 15)
	c.Label(1, 0, "Vin 9.0")
	return &anim.Frame{Index: 3, Time: 0.1, Canvas: c}
}

func TestFrameSVG(t *testing.T) {
	svg := FrameSVG(testFrame(), 4)

	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Fatal("not an svg document")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("expected dot circles")
	}
	if !strings.Contains(svg, "Vin 9.0") {
		t.Error("expected label text")
	}
	if !strings.Contains(svg, "#0B0F1A") {
		t.Error("expected palette background")
	}
}

func TestSVGSinkWritesNumberedFrames(t *testing.T) {
	dir := t.TempDir()
	s := NewSVGSink(dir)

	if err := s.WriteFrame(testFrame()); err != nil {
		t.Fatal(err)
	}
	if s.Frames() != 1 {
		t.Errorf("expected 1 frame written, got %d", s.Frames())
	}
	if _, err := os.Stat(filepath.Join(dir, "frame_00003.svg")); err != nil {
		t.Fatalf("numbered frame file missing: %v", err)
	}
}

func TestGIFSinkCapture(t *testing.T) {
	g := NewGIFSink(30)
	if err := g.WriteFrame(testFrame()); err != nil {
		t.Fatal(err)
	}
	if err := g.WriteFrame(testFrame()); err != nil {
		t.Fatal(err)
	}
	if g.Frames() != 2 {
		t.Errorf("expected 2 captured frames, got %d", g.Frames())
	}

	path := filepath.Join(t.TempDir(), "out.gif")
	if err := g.Save(path); err != nil {
		t.Fatal(err)
	}
}

func TestGIFSinkSaveEmpty(t *testing.T) {
	g := NewGIFSink(30)
	if err := g.Save(filepath.Join(t.TempDir(), "out.gif")); err == nil {
		t.Error("expected error saving an empty gif")
	}
}

func TestTraceCSV(t *testing.T) {
	st := param.NewStore()
	st.Define("vin", 9.0)
	st.Define("r2", 10000.0)

	sc := scene.New()
	d := anim.New(sc, 10, 4, 10)
	d.Play(st.Interpolate("r2", 20000, 0.5, param.Linear))

	tr := NewTrace(st)
	if err := d.Run(context.Background(), tr); err != nil {
		t.Fatal(err)
	}

	if len(tr.Rows) != 6 { // initial frame + 5 ticks
		t.Fatalf("expected 6 trace rows, got %d", len(tr.Rows))
	}

	series := tr.Series("r2")
	if series[0] != 10000 || series[len(series)-1] != 20000 {
		t.Errorf("trace endpoints wrong: %v", series)
	}
	if tr.Series("missing") != nil {
		t.Error("expected nil series for unknown parameter")
	}

	var buf bytes.Buffer
	if err := tr.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "time,vin,r2\n") {
		t.Errorf("csv header wrong: %q", strings.SplitN(out, "\n", 2)[0])
	}
	if lines := strings.Count(out, "\n"); lines != 7 {
		t.Errorf("expected 7 csv lines, got %d", lines)
	}
}
