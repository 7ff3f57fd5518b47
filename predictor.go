package main

import (
	"errors"
	"log"
)

// PredictionSource tells a caller how a prediction was produced, so tests
// and consumers can distinguish a learned answer from a degraded one.
type PredictionSource string

const (
	SourceModel   PredictionSource = "model"   // classified by the trained forest
	SourceRules   PredictionSource = "rules"   // no model on disk, rule ladder applied
	SourceDefault PredictionSource = "default" // something failed, safe default returned
)

// ruleConfidence is the fixed placeholder confidence reported whenever the
// answer is not backed by the trained model.
const ruleConfidence = 0.5

type Prediction struct {
	Level      int              `json:"priority_level"`
	Text       string           `json:"priority_text"`
	Confidence float64          `json:"confidence"`
	Source     PredictionSource `json:"source"`
}

// Predictor assigns a priority to a single report, preferring the persisted
// model and degrading to rule-based scoring. Artifacts are re-read on every
// call, so a completed training run takes effect immediately.
type Predictor struct {
	scorer RuleScorer
	dir    string
}

func NewPredictor(scorer RuleScorer, modelDir string) Predictor {
	return Predictor{scorer: scorer, dir: modelDir}
}

// Predict never fails. With no persisted model the rule ladder decides;
// any failure while loading or classifying yields Medium at half
// confidence. The blanket recovery trades precision for availability: a
// mis-scored report is recoverable, a scoring outage is not.
func (p Predictor) Predict(r Report) Prediction {
	score := p.scorer.ScoreReport(r)

	forest, manifest, err := LoadArtifacts(p.dir)
	if errors.Is(err, ErrNoModel) {
		level := p.scorer.LevelFromScore(score)
		return Prediction{Level: level, Text: PriorityLevels[level], Confidence: ruleConfidence, Source: SourceRules}
	}
	if err != nil {
		log.Printf("Could not load model artifacts: %v", err)
		return defaultPrediction()
	}

	vec := Encode(r, manifest.Columns)
	if allZero(vec) {
		// None of the report's fields matched a trained column: the
		// report is empty or entirely outside the training domain.
		return defaultPrediction()
	}

	level, confidence := forest.Predict(vec)
	text, ok := PriorityLevels[level]
	if !ok {
		return defaultPrediction()
	}
	return Prediction{Level: level, Text: text, Confidence: confidence, Source: SourceModel}
}

func defaultPrediction() Prediction {
	return Prediction{Level: 1, Text: PriorityLevels[1], Confidence: ruleConfidence, Source: SourceDefault}
}

func allZero(vec []float64) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}
