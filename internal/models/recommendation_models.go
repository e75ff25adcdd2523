package models

// RecommendationRequest mirrors the JSON body of POST /api/recommendations.
// NegativeReviews is a pointer so a missing field can be told apart from an
// empty list during validation.
type RecommendationRequest struct {
	NegativeReviews *[]string `json:"negativeReviews"`
	MaxReviews      int       `json:"maxReviews"`
	ChunkSize       int       `json:"chunkSize"`
}

type RecommendationResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
	AnalyzedCount   int    `json:"analyzedCount,omitempty"`
	Recommendations string `json:"recommendations"`
}
