package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

// textPipeline is the slice of the hugot pipeline surface the engine uses.
type textPipeline interface {
	RunPipeline(inputs []string) (*pipelines.TextClassificationOutput, error)
}

// TransformerEngine runs a local ONNX text-classification pipeline through
// hugot. The model is downloaded and loaded lazily on first use; concurrent
// first callers share a single in-flight initialization, and the loaded
// pipeline (or the load error) is memoized for the lifetime of the process.
type TransformerEngine struct {
	modelID    string
	fallbackID string
	modelDir   string

	// loadPipeline builds the pipeline for one model ID. Tests swap it out.
	loadPipeline func(modelID string) (textPipeline, error)

	once     sync.Once
	session  *hugot.Session
	pipeline textPipeline
	initErr  error
}

func NewTransformerEngine(modelID, fallbackID, modelDir string) *TransformerEngine {
	e := &TransformerEngine{
		modelID:    modelID,
		fallbackID: fallbackID,
		modelDir:   modelDir,
	}
	e.loadPipeline = e.loadHugotPipeline
	return e
}

func (e *TransformerEngine) Classify(ctx context.Context, text string) (Prediction, error) {
	e.once.Do(e.load)
	if e.initErr != nil {
		return Prediction{}, fmt.Errorf("%w: %v", ErrLoad, e.initErr)
	}

	select {
	case <-ctx.Done():
		return Prediction{}, ctx.Err()
	default:
	}

	output, err := e.pipeline.RunPipeline([]string{Truncate(text)})
	if err != nil {
		return Prediction{}, fmt.Errorf("pipeline run failed: %w", err)
	}

	outputs := output.ClassificationOutputs
	if len(outputs) == 0 || len(outputs[0]) == 0 {
		return Prediction{}, fmt.Errorf("pipeline returned no classification output")
	}

	best := outputs[0][0]
	for _, candidate := range outputs[0][1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	return Prediction{Label: best.Label, Score: float64(best.Score)}, nil
}

func (e *TransformerEngine) load() {
	if err := os.MkdirAll(e.modelDir, os.ModePerm); err != nil {
		e.initErr = fmt.Errorf("failed to create model directory: %w", err)
		return
	}

	pipeline, err := e.loadPipeline(e.modelID)
	if err != nil {
		slog.Warn("[Classifier] Primary model failed to load, trying fallback",
			slog.String("model", e.modelID),
			slog.String("fallback", e.fallbackID),
			slog.String("error", err.Error()))

		pipeline, err = e.loadPipeline(e.fallbackID)
		if err != nil {
			e.initErr = fmt.Errorf("failed to load fallback model %s: %w", e.fallbackID, err)
			return
		}
	}

	e.pipeline = pipeline
	slog.Info("[Classifier] Sentiment pipeline ready")
}

func (e *TransformerEngine) loadHugotPipeline(modelID string) (textPipeline, error) {
	if e.session == nil {
		session, err := hugot.NewORTSession()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize hugot session: %w", err)
		}
		e.session = session
	}

	slog.Info("[Classifier] Downloading model if not present",
		slog.String("model", modelID),
		slog.String("dir", e.modelDir))

	modelPath, err := hugot.DownloadModel(modelID, e.modelDir, hugot.NewDownloadOptions())
	if err != nil {
		return nil, fmt.Errorf("model download failed: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentPipeline-" + modelID,
	}
	pipeline, err := hugot.NewPipeline(e.session, config)
	if err != nil {
		return nil, fmt.Errorf("pipeline creation failed: %w", err)
	}

	return pipeline, nil
}

// Destroy releases the underlying ONNX session. Only meaningful on shutdown.
func (e *TransformerEngine) Destroy() {
	if e.session != nil {
		e.session.Destroy()
	}
}
