package models

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// AnalyzedReview is the per-row output of the sentiment pipeline.
// Confidence always carries the raw classifier score for the originally
// predicted label, even when the threshold policy remaps the label to neutral.
type AnalyzedReview struct {
	OriginalReview string  `json:"originalReview"`
	CleanedText    string  `json:"cleanedText"`
	Sentiment      string  `json:"sentiment"`
	Confidence     float64 `json:"confidence"`
}

type AnalysisResponse struct {
	Success      bool             `json:"success"`
	TotalReviews int              `json:"totalReviews"`
	Results      []AnalyzedReview `json:"results"`
}
