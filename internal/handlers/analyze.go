package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/reviewflow/internal/analyzer"
	"github.com/spacesedan/reviewflow/internal/models"
	"github.com/spacesedan/reviewflow/internal/upload"
)

// AnalyzeReviews accepts a multipart CSV upload and returns one sentiment
// record per scorable review row, in upload order.
func (h *Handler) AnalyzeReviews(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A CSV file is required in the 'file' form field"})
		return
	}
	defer file.Close()

	reviews, err := upload.ExtractReviews(file)
	if err != nil {
		var colErr *upload.ColumnError
		if errors.As(err, &colErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":            colErr.Error(),
				"availableColumns": colErr.Available,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(reviews) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid reviews found in CSV"})
		return
	}

	slog.Info("[AnalyzeHandler] Analyzing uploaded reviews",
		slog.Int("reviews", len(reviews)))

	results, err := analyzer.Analyze(c.Request.Context(), h.clf, reviews, h.cfg.ConfidenceThreshold)
	if err != nil {
		slog.Error("[AnalyzeHandler] Sentiment pipeline unavailable",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to analyze reviews",
			"message": err.Error(),
		})
		return
	}

	for _, result := range results {
		h.metrics.ObserveReview(result.Sentiment)
	}
	h.metrics.AddSkipped(len(reviews) - len(results))

	c.JSON(http.StatusOK, models.AnalysisResponse{
		Success:      true,
		TotalReviews: len(reviews),
		Results:      results,
	})
}
