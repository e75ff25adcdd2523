package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/reviewflow/internal/models"
	"github.com/spacesedan/reviewflow/internal/recommend"
)

const (
	DEFAULT_MAX_REVIEWS = 100

	positiveFeedbackMessage = "All reviews are positive! Keep up the great work! 🎉"
)

// GetRecommendations generates a prose improvement report from the supplied
// negative reviews. An empty list short-circuits with a canned message and
// never touches the generative API.
func (h *Handler) GetRecommendations(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if req.NegativeReviews == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "negativeReviews must be an array of strings"})
		return
	}

	reviews := *req.NegativeReviews
	if len(reviews) == 0 {
		c.JSON(http.StatusOK, models.RecommendationResponse{
			Success:         true,
			Message:         "No negative reviews to analyze",
			Recommendations: positiveFeedbackMessage,
		})
		return
	}

	maxReviews := req.MaxReviews
	if maxReviews <= 0 {
		maxReviews = DEFAULT_MAX_REVIEWS
	}
	chunkSize := req.ChunkSize
	if chunkSize <= 0 {
		chunkSize = recommend.DEFAULT_CHUNK_SIZE
	}
	if len(reviews) > maxReviews {
		reviews = reviews[:maxReviews]
	}

	generator, err := h.newGenerator()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Generative API credential required: " + err.Error(),
		})
		return
	}

	slog.Info("[RecommendationHandler] Generating recommendations",
		slog.Int("reviews", len(reviews)),
		slog.Int("chunk_size", chunkSize))

	recommender := recommend.NewRecommender(generator, h.cfg.ChunkDelay, h.metrics)
	report := recommender.Recommend(c.Request.Context(), reviews, chunkSize)

	c.JSON(http.StatusOK, models.RecommendationResponse{
		Success:         true,
		AnalyzedCount:   len(reviews),
		Recommendations: report,
	})
}
