package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing-config.yaml"))

	cfg := LoadConfig()

	if cfg.ListenAddr != ":5000" {
		t.Fatalf("unexpected listen addr default: %q", cfg.ListenAddr)
	}
	if cfg.DBPath != "./prioritybot.db" {
		t.Fatalf("unexpected db path default: %q", cfg.DBPath)
	}
	if cfg.ModelDir != "./model" {
		t.Fatalf("unexpected model dir default: %q", cfg.ModelDir)
	}
	if cfg.SyntheticSamples != 200 {
		t.Fatalf("unexpected synthetic_samples default: %d", cfg.SyntheticSamples)
	}
	if cfg.ForestTrees != 100 {
		t.Fatalf("unexpected forest_trees default: %d", cfg.ForestTrees)
	}
	if cfg.RandomSeed != 42 {
		t.Fatalf("unexpected random_seed default: %d", cfg.RandomSeed)
	}
	if cfg.MinRealReports != 10 {
		t.Fatalf("unexpected min_real_reports default: %d", cfg.MinRealReports)
	}
	if cfg.RetrainSchedule != "" {
		t.Fatalf("scheduler should default off, got %q", cfg.RetrainSchedule)
	}
}

func TestLoadConfigYAMLAndEnvOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
listen_addr: ":8080"
db_path: "/tmp/from-yaml.db"
synthetic_samples: 300
forest_trees: 50
retrain_schedule: "0 3 * * *"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", cfgPath)
	t.Setenv("DB_PATH", "/tmp/from-env.db")
	t.Setenv("FOREST_TREES", "75")

	cfg := LoadConfig()

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("yaml listen addr not applied: %q", cfg.ListenAddr)
	}
	if cfg.DBPath != "/tmp/from-env.db" {
		t.Fatalf("env should override yaml, got %q", cfg.DBPath)
	}
	if cfg.SyntheticSamples != 300 {
		t.Fatalf("yaml synthetic_samples not applied: %d", cfg.SyntheticSamples)
	}
	if cfg.ForestTrees != 75 {
		t.Fatalf("env forest_trees not applied: %d", cfg.ForestTrees)
	}
	if cfg.RetrainSchedule != "0 3 * * *" {
		t.Fatalf("yaml retrain_schedule not applied: %q", cfg.RetrainSchedule)
	}
}
