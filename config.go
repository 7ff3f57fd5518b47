package main

import (
	"log"
	"os"
	"strconv"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	DBPath     string `yaml:"db_path"`
	ModelDir   string `yaml:"model_dir"`

	SyntheticSamples int   `yaml:"synthetic_samples"`
	ForestTrees      int   `yaml:"forest_trees"`
	RandomSeed       int64 `yaml:"random_seed"`
	MinRealReports   int   `yaml:"min_real_reports"`

	RetrainSchedule string `yaml:"retrain_schedule"`

	SlackBotToken   string `yaml:"slack_bot_token"`
	NotifyChannelID string `yaml:"notify_channel_id"`
}

func LoadConfig() Config {
	var cfg Config

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.ListenAddr, "LISTEN_ADDR")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.ModelDir, "MODEL_DIR")
	envOverrideInt(&cfg.SyntheticSamples, "SYNTHETIC_SAMPLES")
	envOverrideInt(&cfg.ForestTrees, "FOREST_TREES")
	envOverrideInt64(&cfg.RandomSeed, "RANDOM_SEED")
	envOverrideInt(&cfg.MinRealReports, "MIN_REAL_REPORTS")
	envOverride(&cfg.RetrainSchedule, "RETRAIN_SCHEDULE")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.NotifyChannelID, "NOTIFY_CHANNEL_ID")

	// Defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":5000"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./prioritybot.db"
	}
	if cfg.ModelDir == "" {
		cfg.ModelDir = "./model"
	}
	if cfg.SyntheticSamples == 0 {
		cfg.SyntheticSamples = 200
	}
	if cfg.ForestTrees == 0 {
		cfg.ForestTrees = 100
	}
	if cfg.RandomSeed == 0 {
		cfg.RandomSeed = 42
	}
	if cfg.MinRealReports == 0 {
		cfg.MinRealReports = 10
	}

	// Validate
	if cfg.SyntheticSamples < 1 {
		log.Fatalf("invalid synthetic_samples '%d': must be >= 1", cfg.SyntheticSamples)
	}
	if cfg.ForestTrees < 1 {
		log.Fatalf("invalid forest_trees '%d': must be >= 1", cfg.ForestTrees)
	}
	if cfg.MinRealReports < 1 {
		log.Fatalf("invalid min_real_reports '%d': must be >= 1", cfg.MinRealReports)
	}
	if cfg.RetrainSchedule != "" {
		if _, err := cron.ParseStandard(cfg.RetrainSchedule); err != nil {
			log.Fatalf("invalid retrain_schedule '%s': %v", cfg.RetrainSchedule, err)
		}
	}
	if cfg.NotifyChannelID != "" && cfg.SlackBotToken == "" {
		log.Fatalf("slack_bot_token is required when notify_channel_id is set")
	}

	return cfg
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}

func envOverrideInt64(field *int64, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}
