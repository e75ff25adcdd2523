package classifier

import (
	"context"
	"errors"
	"strings"

	"github.com/spacesedan/reviewflow/config"
	"github.com/spacesedan/reviewflow/internal/models"
)

// Input longer than this is cut before hitting the model; matches the
// transformer context limit the models were exported with.
const MAX_MODEL_INPUT_CHARS = 512

// ErrLoad marks a classifier that could not be initialized at all. Callers
// treat it as fatal for the whole batch, unlike per-review failures.
var ErrLoad = errors.New("sentiment classifier unavailable")

type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type Classifier interface {
	Classify(ctx context.Context, text string) (Prediction, error)
}

// New selects the configured engine. The transformer engine is the default;
// the VADER engine is a deterministic lexicon alternative that needs no model
// download.
func New(cfg *config.Config) Classifier {
	if cfg.SentimentEngine == "vader" {
		return NewVaderEngine()
	}
	return NewTransformerEngine(cfg.SentimentModel, cfg.FallbackModel, cfg.ModelDir)
}

// MapLabel normalizes whatever label string an engine emits to one of the
// three canonical sentiments. The substring match is deliberately loose so
// model families that emit "NEGATIVE", "Neg", or "2 stars negative" all land
// in the same bucket; anything unrecognized is treated as neutral.
func MapLabel(raw string) string {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "neg"):
		return models.SentimentNegative
	case strings.Contains(lower, "neu"):
		return models.SentimentNeutral
	case strings.Contains(lower, "pos"):
		return models.SentimentPositive
	default:
		return models.SentimentNeutral
	}
}

// ApplyThreshold downgrades low-confidence non-neutral labels to neutral.
// The score itself is never modified; the caller records it as-is.
func ApplyThreshold(label string, score, threshold float64) string {
	if label != models.SentimentNeutral && score < threshold {
		return models.SentimentNeutral
	}
	return label
}

// Truncate limits text to the model context window. Truncation applies to
// the normalized text, never the original review.
func Truncate(text string) string {
	if len(text) > MAX_MODEL_INPUT_CHARS {
		return text[:MAX_MODEL_INPUT_CHARS]
	}
	return text
}
