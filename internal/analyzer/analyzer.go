package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/spacesedan/reviewflow/internal/classifier"
	"github.com/spacesedan/reviewflow/internal/models"
	"github.com/spacesedan/reviewflow/internal/preprocessing"
)

// Analyze runs the full sentiment pipeline over a batch of raw reviews,
// preserving input order. Rows that normalize to nothing are silently
// skipped, and a review that fails classification is dropped with a warning
// while the rest of the batch continues. The only whole-batch failure is a
// classifier that cannot load at all.
func Analyze(ctx context.Context, clf classifier.Classifier, reviews []string, threshold float64) ([]models.AnalyzedReview, error) {
	results := make([]models.AnalyzedReview, 0, len(reviews))

	for i, review := range reviews {
		cleaned := preprocessing.Normalize(review)
		if cleaned == "" {
			slog.Debug("[Analyzer] Skipping review with no scorable text",
				slog.Int("row", i))
			continue
		}

		prediction, err := clf.Classify(ctx, cleaned)
		if err != nil {
			if errors.Is(err, classifier.ErrLoad) {
				return nil, err
			}
			slog.Warn("[Analyzer] Skipping review after classification failure",
				slog.Int("row", i),
				slog.String("error", err.Error()))
			continue
		}

		label := classifier.MapLabel(prediction.Label)
		label = classifier.ApplyThreshold(label, prediction.Score, threshold)

		results = append(results, models.AnalyzedReview{
			OriginalReview: review,
			CleanedText:    cleaned,
			Sentiment:      label,
			Confidence:     roundConfidence(prediction.Score),
		})
	}

	slog.Info("[Analyzer] Batch complete",
		slog.Int("input", len(reviews)),
		slog.Int("analyzed", len(results)))

	return results, nil
}

func roundConfidence(score float64) float64 {
	return math.Round(score*1000) / 1000
}
