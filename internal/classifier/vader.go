package classifier

import (
	"context"
	"math"

	"github.com/jonreiter/govader"

	"github.com/spacesedan/reviewflow/internal/models"
)

// VaderEngine scores text with the VADER lexicon. It is fully deterministic
// and ships with the binary, which makes it the engine of choice for tests
// and for deployments that cannot pull ONNX weights.
type VaderEngine struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderEngine() *VaderEngine {
	return &VaderEngine{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

func (e *VaderEngine) Classify(ctx context.Context, text string) (Prediction, error) {
	select {
	case <-ctx.Done():
		return Prediction{}, ctx.Err()
	default:
	}

	sentiment := e.analyzer.PolarityScores(Truncate(text))
	score := sentiment.Compound

	var label string
	if score >= 0.20 {
		label = models.SentimentPositive
	} else if score <= -0.20 {
		label = models.SentimentNegative
	} else {
		label = models.SentimentNeutral
	}

	confidence := math.Abs(score)
	if confidence > 1 {
		confidence = 1
	}

	return Prediction{Label: label, Score: confidence}, nil
}
