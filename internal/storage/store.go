// Package storage keeps a catalog of render runs under a data directory.
// Each run is a directory holding metadata.json and samples.csv.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/loxodrome/internal/config"
	"github.com/san-kum/loxodrome/internal/export"
	"github.com/san-kum/loxodrome/internal/scene"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
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

// Output describes the artifact a run produced.
type Output struct {
	Kind   string `json:"kind"`
	Path   string `json:"path"`
	Frames int    `json:"frames"`
}

type RunMetadata struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Output    Output         `json:"output"`
	Duration  float64        `json:"duration"`
	Elapsed   time.Duration  `json:"elapsed"`
	Config    *config.Config `json:"config"`
}

// Save records a run and its sampled ribbons, returning the run ID.
func (s *Store) Save(cfg *config.Config, sc *scene.Scene, out Output, elapsed time.Duration) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", out.Kind, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: now,
		Output:    out,
		Duration:  sc.Duration(),
		Elapsed:   elapsed,
		Config:    cfg,
	}
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, samplesFile))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := export.WriteCSV(f, sc, nil); err != nil {
		return "", err
	}

	return runID, f.Close()
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return f.Close()
}

// List returns all readable runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSamples reads a run's sampled ribbons keyed by ribbon index.
func (s *Store) LoadSamples(runID string) (map[int][]r3.Vec, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return export.ReadCSV(f)
}
