package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/reviewflow/config"
	"github.com/spacesedan/reviewflow/internal/classifier"
	"github.com/spacesedan/reviewflow/internal/metrics"
	"github.com/spacesedan/reviewflow/internal/recommend"
)

// GeneratorFactory builds the generative-text capability on demand so the
// handler never holds a client when no credential is configured.
type GeneratorFactory func() (recommend.Generator, error)

type Handler struct {
	cfg          *config.Config
	clf          classifier.Classifier
	metrics      *metrics.PipelineMetrics
	newGenerator GeneratorFactory
}

func NewHandler(cfg *config.Config, clf classifier.Classifier, m *metrics.PipelineMetrics, factory GeneratorFactory) *Handler {
	return &Handler{
		cfg:          cfg,
		clf:          clf,
		metrics:      m,
		newGenerator: factory,
	}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "reviewflow API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"health":          "GET /api/health",
			"analyze":         "POST /api/analyze",
			"recommendations": "POST /api/recommendations",
		},
		"sentiment_engine": h.cfg.SentimentEngine,
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "reviewflow server is running",
	})
}
