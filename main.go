package main

import (
	"errors"
	"log"
)

func main() {
	cfg := LoadConfig()

	db, err := InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	defer db.Close()

	store := NewSQLiteStore(db)
	scorer := NewRuleScorer(DefaultWeights())
	trainer := NewTrainer(store, scorer, cfg)
	predictor := NewPredictor(scorer, cfg.ModelDir)
	notifier := NewNotifier(cfg)

	if _, _, err := LoadArtifacts(cfg.ModelDir); errors.Is(err, ErrNoModel) {
		log.Println("No existing model found. Training new model...")
		if _, err := trainer.TrainSynthetic(); err != nil {
			log.Fatalf("Initial training failed: %v", err)
		}
	} else if err != nil {
		log.Printf("Existing model artifacts unreadable, predictions will degrade until retrain: %v", err)
	}

	if c := StartRetrainScheduler(cfg, trainer, store, predictor, notifier); c != nil {
		defer c.Stop()
	}

	srv := &Server{store: store, trainer: trainer, predictor: predictor, notifier: notifier}

	log.Printf("Starting priority service on %s", cfg.ListenAddr)
	if err := NewRouter(srv).Run(cfg.ListenAddr); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
