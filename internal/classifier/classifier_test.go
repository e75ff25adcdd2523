package classifier

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLabel(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"negative", "negative"},
		{"Negative", "negative"},
		{"NEGATIVE", "negative"},
		{"neg", "negative"},
		{"neutral", "neutral"},
		{"NEU", "neutral"},
		{"positive", "positive"},
		{"POSITIVE", "positive"},
		{"pos", "positive"},
		{"LABEL_1", "neutral"},
		{"", "neutral"},
		{"something else", "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapLabel(tt.raw))
		})
	}
}

func TestApplyThreshold(t *testing.T) {
	const threshold = 0.80

	// Low-confidence polar labels collapse to neutral.
	assert.Equal(t, "neutral", ApplyThreshold("negative", 0.55, threshold))
	assert.Equal(t, "neutral", ApplyThreshold("positive", 0.79, threshold))

	// Confident polar labels survive.
	assert.Equal(t, "positive", ApplyThreshold("positive", 0.92, threshold))
	assert.Equal(t, "negative", ApplyThreshold("negative", 0.80, threshold))

	// Neutral is never touched, regardless of score.
	assert.Equal(t, "neutral", ApplyThreshold("neutral", 0.1, threshold))
	assert.Equal(t, "neutral", ApplyThreshold("neutral", 0.99, threshold))
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", MAX_MODEL_INPUT_CHARS+100)
	assert.Len(t, Truncate(long), MAX_MODEL_INPUT_CHARS)

	short := "short text"
	assert.Equal(t, short, Truncate(short))

	exact := strings.Repeat("b", MAX_MODEL_INPUT_CHARS)
	assert.Equal(t, exact, Truncate(exact))
}

func TestVaderEngine(t *testing.T) {
	engine := NewVaderEngine()
	ctx := context.Background()

	pos, err := engine.Classify(ctx, "this course was wonderful and the staff were amazing")
	require.NoError(t, err)
	assert.Equal(t, "positive", MapLabel(pos.Label))
	assert.GreaterOrEqual(t, pos.Score, 0.0)
	assert.LessOrEqual(t, pos.Score, 1.0)

	neg, err := engine.Classify(ctx, "terrible awful experience, everything was horrible and broken")
	require.NoError(t, err)
	assert.Equal(t, "negative", MapLabel(neg.Label))

	neu, err := engine.Classify(ctx, "the building is on the main road")
	require.NoError(t, err)
	assert.Equal(t, "neutral", MapLabel(neu.Label))
}

func TestVaderEngineCancelledContext(t *testing.T) {
	engine := NewVaderEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Classify(ctx, "anything")
	assert.Error(t, err)
}
