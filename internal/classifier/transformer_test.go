package classifier

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/knights-analytics/hugot/pipelines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePipeline struct {
	label string
	score float32
}

func (p *fakePipeline) RunPipeline(inputs []string) (*pipelines.TextClassificationOutput, error) {
	return &pipelines.TextClassificationOutput{
		ClassificationOutputs: [][]pipelines.ClassificationOutput{
			{{Label: p.label, Score: p.score}},
		},
	}, nil
}

func TestTransformerFallsBackWhenPrimaryFailsToLoad(t *testing.T) {
	engine := NewTransformerEngine("primary-model", "fallback-model", t.TempDir())

	var loaded []string
	engine.loadPipeline = func(modelID string) (textPipeline, error) {
		loaded = append(loaded, modelID)
		if modelID == "primary-model" {
			return nil, errors.New("weights unavailable")
		}
		return &fakePipeline{label: "POSITIVE", score: 0.97}, nil
	}

	prediction, err := engine.Classify(context.Background(), "great course")
	require.NoError(t, err)
	assert.Equal(t, "POSITIVE", prediction.Label)
	assert.InDelta(t, 0.97, prediction.Score, 1e-6)
	assert.Equal(t, []string{"primary-model", "fallback-model"}, loaded)

	_, err = engine.Classify(context.Background(), "another review")
	require.NoError(t, err)
	assert.Len(t, loaded, 2, "loaded pipeline must be reused, not rebuilt")
}

func TestTransformerLoadErrorIsMemoized(t *testing.T) {
	engine := NewTransformerEngine("primary-model", "fallback-model", t.TempDir())

	var attempts int
	engine.loadPipeline = func(modelID string) (textPipeline, error) {
		attempts++
		return nil, errors.New("no models anywhere")
	}

	_, err := engine.Classify(context.Background(), "some text")
	require.ErrorIs(t, err, ErrLoad)
	assert.Equal(t, 2, attempts, "primary then fallback, once each")

	_, err = engine.Classify(context.Background(), "some other text")
	require.ErrorIs(t, err, ErrLoad)
	assert.Equal(t, 2, attempts, "failed load must not be retried on later calls")
}

func TestTransformerConcurrentFirstCallersShareOneLoad(t *testing.T) {
	engine := NewTransformerEngine("primary-model", "fallback-model", t.TempDir())

	var mu sync.Mutex
	var loads int
	engine.loadPipeline = func(modelID string) (textPipeline, error) {
		mu.Lock()
		loads++
		mu.Unlock()
		return &fakePipeline{label: "NEUTRAL", score: 0.5}, nil
	}

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.Classify(context.Background(), "shared first call")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "caller %d", i)
	}
	assert.Equal(t, 1, loads)
}
