// Package store persists render records: metadata plus the frame-by-frame
// parameter trace, one directory per render under a data dir.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/voltlab/electroanim/internal/export"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RenderMetadata struct {
	ID        string             `json:"id"`
	Scene     string             `json:"scene"`
	Timestamp time.Time          `json:"timestamp"`
	FPS       int                `json:"fps"`
	Frames    int                `json:"frames"`
	Duration  float64            `json:"duration"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one render record and returns its id.
func (s *Store) Save(sceneName string, fps int, duration float64, mets map[string]float64, trace *export.Trace) (string, error) {
	renderID := fmt.Sprintf("%s_%d", sceneName, time.Now().Unix())
	dir := filepath.Join(s.baseDir, renderID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := RenderMetadata{
		ID:        renderID,
		Scene:     sceneName,
		Timestamp: time.Now(),
		FPS:       fps,
		Frames:    len(trace.Rows),
		Duration:  duration,
		Metrics:   mets,
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "params.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()
	if err := trace.WriteCSV(csvFile); err != nil {
		return "", err
	}
	return renderID, nil
}

// List returns all saved render records, newest last.
func (s *Store) List() ([]RenderMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RenderMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

// Load reads one render's metadata.
func (s *Store) Load(renderID string) (*RenderMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, renderID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("store: render %s: %w", renderID, err)
	}
	var meta RenderMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("store: render %s: %w", renderID, err)
	}
	return &meta, nil
}

// LoadTrace reads a render's parameter trace back from disk.
func (s *Store) LoadTrace(renderID string) (names []string, times []float64, rows [][]float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, renderID, "params.csv"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("store: render %s: %w", renderID, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("store: render %s: %w", renderID, err)
	}
	if len(header) < 2 || header[0] != "time" {
		return nil, nil, nil, fmt.Errorf("store: render %s: malformed trace header", renderID)
	}
	names = header[1:]

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, nil, fmt.Errorf("store: render %s: %w", renderID, err)
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("store: render %s: %w", renderID, err)
		}
		row := make([]float64, len(rec)-1)
		for i, cell := range rec[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("store: render %s: %w", renderID, err)
			}
			row[i] = v
		}
		times = append(times, t)
		rows = append(rows, row)
	}
	return names, times, rows, nil
}

// ExportJSON writes a render's metadata as indented JSON.
func ExportJSON(w io.Writer, meta *RenderMetadata) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
