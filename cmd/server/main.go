package main

import (
	"log/slog"
	"os"

	"github.com/spacesedan/reviewflow/config"
	"github.com/spacesedan/reviewflow/internal/classifier"
	"github.com/spacesedan/reviewflow/internal/handlers"
	"github.com/spacesedan/reviewflow/internal/logging"
	"github.com/spacesedan/reviewflow/internal/metrics"
	"github.com/spacesedan/reviewflow/internal/recommend"
	"github.com/spacesedan/reviewflow/internal/routes"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.Load()

	clf := classifier.New(cfg)
	if engine, ok := clf.(*classifier.TransformerEngine); ok {
		defer engine.Destroy()
	}
	pipelineMetrics := metrics.NewPipelineMetrics()

	generatorFactory := func() (recommend.Generator, error) {
		return recommend.NewOpenAIGenerator(cfg.OpenAIModel)
	}

	handler := handlers.NewHandler(cfg, clf, pipelineMetrics, generatorFactory)
	router := routes.SetupRouter(handler, pipelineMetrics)

	slog.Info("[Main] Starting reviewflow server",
		slog.String("port", cfg.Port),
		slog.String("engine", cfg.SentimentEngine))

	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("[Main] Server exited",
			slog.String("error", err.Error()))
	}
}
