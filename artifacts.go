package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	manifestFile = "manifest.json"
	modelFile    = "model.json"
	metricsFile  = "metrics.txt"
	datasetFile  = "synthetic_training_data.csv"
)

// ErrNoModel means no training run has completed yet. Callers treat it as
// steady state, not a failure.
var ErrNoModel = errors.New("no trained model")

// Manifest records one completed training run. It is written after the
// model file and read before it, so a manifest on disk guarantees the model
// and feature schema it names form a consistent pair.
type Manifest struct {
	RunID     string    `json:"run_id"`
	TrainedAt time.Time `json:"trained_at"`
	Source    string    `json:"source"` // "synthetic" or "real"
	Samples   int       `json:"samples"`
	Trees     int       `json:"trees"`
	Accuracy  float64   `json:"accuracy"`
	Columns   []string  `json:"feature_columns"`
}

// SaveArtifacts writes the model, metrics report, and manifest into dir.
// Each file lands under a temporary name and is renamed into place, with
// the manifest renamed last: a crash mid-persist leaves the previous run
// loadable and never exposes a half-written pair.
func SaveArtifacts(dir string, m Manifest, forest *Forest, metrics string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	modelData, err := json.Marshal(forest)
	if err != nil {
		return err
	}
	manifestData, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	if err := writeVia(filepath.Join(dir, modelFile), modelData); err != nil {
		return err
	}
	if err := writeVia(filepath.Join(dir, metricsFile), []byte(metrics)); err != nil {
		return err
	}
	return writeVia(filepath.Join(dir, manifestFile), manifestData)
}

// LoadArtifacts reads the current manifest and model pair. A missing
// manifest yields ErrNoModel.
func LoadArtifacts(dir string) (*Forest, Manifest, error) {
	var m Manifest
	manifestData, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if os.IsNotExist(err) {
		return nil, m, ErrNoModel
	}
	if err != nil {
		return nil, m, err
	}
	if err := json.Unmarshal(manifestData, &m); err != nil {
		return nil, m, fmt.Errorf("corrupt manifest: %w", err)
	}

	modelData, err := os.ReadFile(filepath.Join(dir, modelFile))
	if err != nil {
		return nil, m, err
	}
	var forest Forest
	if err := json.Unmarshal(modelData, &forest); err != nil {
		return nil, m, fmt.Errorf("corrupt model: %w", err)
	}
	return &forest, m, nil
}

func writeVia(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
