package config

import (
	"os"
	"strconv"
	"time"
)

const (
	DEFAULT_SENTIMENT_MODEL  = "cardiffnlp/twitter-roberta-base-sentiment-latest"
	FALLBACK_SENTIMENT_MODEL = "KnightsAnalytics/distilbert-base-uncased-finetuned-sst-2-english"
)

// Config holds every tunable the service reads from the environment.
// Values the original operators never documented a rationale for
// (confidence threshold, inter-chunk delay) stay configurable defaults.
type Config struct {
	Port            string
	Env             string
	SentimentEngine string

	SentimentModel string
	FallbackModel  string
	ModelDir       string

	ConfidenceThreshold float64
	ChunkDelay          time.Duration

	OpenAIModel string
}

func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "5000"),
		Env:                 getEnv("APP_ENV", "dev"),
		SentimentEngine:     getEnv("SENTIMENT_ENGINE", "transformer"),
		SentimentModel:      getEnv("SENTIMENT_MODEL", DEFAULT_SENTIMENT_MODEL),
		FallbackModel:       getEnv("SENTIMENT_FALLBACK_MODEL", FALLBACK_SENTIMENT_MODEL),
		ModelDir:            getEnv("SENTIMENT_MODEL_DIR", "./models"),
		ConfidenceThreshold: getEnvFloat("CONFIDENCE_THRESHOLD", 0.80),
		ChunkDelay:          getEnvDuration("CHUNK_DELAY_MS", 1000),
		OpenAIModel:         getEnv("OPENAI_MODEL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallbackMs int) time.Duration {
	ms, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		ms = fallbackMs
	}
	return time.Duration(ms) * time.Millisecond
}
