package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/spacesedan/reviewflow/internal/handlers"
	"github.com/spacesedan/reviewflow/internal/metrics"
)

func SetupRouter(h *handlers.Handler, m *metrics.PipelineMetrics) *gin.Engine {
	r := gin.New()

	r.Use(requestLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": fmt.Sprint(recovered),
		})
	}))
	r.Use(cors.Default())

	r.GET("/", h.Root)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/analyze", h.AnalyzeReviews)
		api.POST("/recommendations", h.GetRecommendations)
	}

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("[HTTP] Request handled",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)))
	}
}
