package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/voltlab/electroanim/internal/anim"
	"github.com/voltlab/electroanim/internal/param"
)

// Trace records every parameter's value once per frame. It doubles as a
// frame sink so it can ride along any render.
type Trace struct {
	store *param.Store
	names []string
	Times []float64
	Rows  [][]float64
}

func NewTrace(store *param.Store) *Trace {
	return &Trace{store: store, names: store.Names()}
}

func (t *Trace) WriteFrame(f *anim.Frame) error {
	row := make([]float64, len(t.names))
	for i, name := range t.names {
		row[i] = t.store.Get(name)
	}
	t.Times = append(t.Times, f.Time)
	t.Rows = append(t.Rows, row)
	return nil
}

// Names returns the traced parameter names in store order.
func (t *Trace) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Series extracts one parameter's values across all recorded frames.
func (t *Trace) Series(name string) []float64 {
	idx := -1
	for i, n := range t.names {
		if n == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out
}

// WriteCSV emits the trace as a time-indexed table.
func (t *Trace) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := append([]string{"time"}, t.names...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	for i, row := range t.Rows {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, strconv.FormatFloat(t.Times[i], 'f', 6, 64))
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	return nil
}

// MultiSink fans frames out to several sinks in order.
type MultiSink []anim.FrameSink

func (m MultiSink) WriteFrame(f *anim.Frame) error {
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.WriteFrame(f); err != nil {
			return err
		}
	}
	return nil
}
