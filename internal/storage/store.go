package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/distsim/internal/column"
	"github.com/san-kum/distsim/internal/report"
)

// Store keeps one directory per saved run under a base data directory:
// metadata.json plus the stages.csv table.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Components  []string           `json:"components"`
	Feed        map[string]float64 `json:"feed"`
	Stages      int                `json:"stages"`
	FeedStage   int                `json:"feed_stage"`
	RefluxRatio float64            `json:"reflux_ratio"`
	Condenser   string             `json:"condenser"`
	Reboiler    string             `json:"reboiler"`
	Seed        int64              `json:"seed"`
	TotalDuty   float64            `json:"total_duty"`
	Volatility  map[string]float64 `json:"relative_volatility"`
}

// Save writes a simulated column and its report rows as a new run and
// returns the run id.
func (s *Store) Save(col *column.Column, seed int64, rows []report.Row) (string, error) {
	runID := fmt.Sprintf("column_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	names := make([]string, 0, len(col.Components))
	for _, comp := range col.Components {
		names = append(names, comp.Name)
	}

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		Components:  names,
		Feed:        col.Feed,
		Stages:      col.NumStages,
		FeedStage:   col.FeedStage,
		RefluxRatio: col.RefluxRatio,
		Condenser:   col.Condenser,
		Reboiler:    col.Reboiler,
		Seed:        seed,
		TotalDuty:   col.TotalDuty,
		Volatility:  col.Volatility,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "stages.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := report.WriteCSV(csvFile, rows); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadRows reads the stage table of a saved run.
func (s *Store) LoadRows(runID string) ([]report.Row, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "stages.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return report.ReadCSV(file)
}
