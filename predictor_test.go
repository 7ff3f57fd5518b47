package main

import (
	"os"
	"path/filepath"
	"testing"
)

func trainedModelDir(t *testing.T) string {
	t.Helper()
	cfg := testConfig(t)
	trainer := NewTrainer(newTestStore(t), NewRuleScorer(DefaultWeights()), cfg)
	if _, err := trainer.TrainSynthetic(); err != nil {
		t.Fatalf("TrainSynthetic failed: %v", err)
	}
	return cfg.ModelDir
}

func TestPredictWithoutModelUsesRuleLadder(t *testing.T) {
	predictor := NewPredictor(NewRuleScorer(DefaultWeights()), filepath.Join(t.TempDir(), "no-model"))

	pred := predictor.Predict(Report{
		ProblemCategory:   "Safety/Security",
		ImpactScope:       "Everyone affected",
		OccurrencePattern: "Daily",
	})
	if pred.Source != SourceRules {
		t.Fatalf("source = %q, want rules", pred.Source)
	}
	if pred.Level != 3 || pred.Text != "Critical" {
		t.Fatalf("got level %d (%q), want 3 (Critical)", pred.Level, pred.Text)
	}
	if pred.Confidence != 0.5 {
		t.Fatalf("rule-based confidence = %v, want exactly 0.5", pred.Confidence)
	}
}

func TestPredictWithoutModelLowPriority(t *testing.T) {
	predictor := NewPredictor(NewRuleScorer(DefaultWeights()), filepath.Join(t.TempDir(), "no-model"))

	pred := predictor.Predict(Report{
		ProblemCategory:   "Academic",
		ImpactScope:       "Single person affected",
		OccurrencePattern: "First occurrence",
	})
	if pred.Level != 0 || pred.Text != "Low" {
		t.Fatalf("got level %d (%q), want 0 (Low)", pred.Level, pred.Text)
	}
	if pred.Source != SourceRules || pred.Confidence != 0.5 {
		t.Fatalf("got source %q confidence %v, want rules 0.5", pred.Source, pred.Confidence)
	}
}

func TestPredictWithModel(t *testing.T) {
	dir := trainedModelDir(t)
	predictor := NewPredictor(NewRuleScorer(DefaultWeights()), dir)

	pred := predictor.Predict(Report{
		ProblemCategory:   "Safety/Security",
		ReporterType:      "Student",
		Location:          "Hall",
		ImpactScope:       "Everyone affected",
		OccurrencePattern: "Daily",
	})
	if pred.Source != SourceModel {
		t.Fatalf("source = %q, want model", pred.Source)
	}
	if pred.Level != 3 {
		t.Fatalf("level = %d, want 3 for the strongest report", pred.Level)
	}
	if pred.Text != PriorityLevels[pred.Level] {
		t.Fatalf("text %q does not match level %d", pred.Text, pred.Level)
	}
	if pred.Confidence <= 0 || pred.Confidence > 1 {
		t.Fatalf("confidence %v outside (0,1]", pred.Confidence)
	}
}

func TestPredictEmptyReportWithModelIsSafeDefault(t *testing.T) {
	dir := trainedModelDir(t)
	predictor := NewPredictor(NewRuleScorer(DefaultWeights()), dir)

	pred := predictor.Predict(Report{})
	if pred.Source != SourceDefault {
		t.Fatalf("source = %q, want default", pred.Source)
	}
	if pred.Level != 1 || pred.Text != "Medium" || pred.Confidence != 0.5 {
		t.Fatalf("got (%d, %q, %v), want (1, Medium, 0.5)", pred.Level, pred.Text, pred.Confidence)
	}
}

func TestPredictCorruptModelIsSafeDefault(t *testing.T) {
	dir := trainedModelDir(t)
	if err := os.WriteFile(filepath.Join(dir, modelFile), []byte("not json"), 0644); err != nil {
		t.Fatalf("corrupt model file: %v", err)
	}

	predictor := NewPredictor(NewRuleScorer(DefaultWeights()), dir)
	pred := predictor.Predict(Report{
		ProblemCategory:   "Maintenance",
		ReporterType:      "Student",
		Location:          "Hall",
		ImpactScope:       "Everyone affected",
		OccurrencePattern: "Daily",
	})
	if pred.Source != SourceDefault {
		t.Fatalf("source = %q, want default", pred.Source)
	}
	if pred.Level != 1 || pred.Confidence != 0.5 {
		t.Fatalf("got (%d, %v), want (1, 0.5)", pred.Level, pred.Confidence)
	}
}

func TestPredictUnseenCategoryStillClassifies(t *testing.T) {
	dir := trainedModelDir(t)
	predictor := NewPredictor(NewRuleScorer(DefaultWeights()), dir)

	pred := predictor.Predict(Report{
		ProblemCategory:   "Never Seen Before",
		ReporterType:      "Student",
		Location:          "Hall",
		ImpactScope:       "Everyone affected",
		OccurrencePattern: "Daily",
	})
	// Four known fields still light up, so the model answers.
	if pred.Source != SourceModel {
		t.Fatalf("source = %q, want model", pred.Source)
	}
	if pred.Text != PriorityLevels[pred.Level] {
		t.Fatalf("text %q does not match level %d", pred.Text, pred.Level)
	}
}
