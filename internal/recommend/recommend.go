package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spacesedan/reviewflow/internal/metrics"
	"github.com/spacesedan/reviewflow/internal/utils"
)

const (
	DEFAULT_CHUNK_SIZE  = 50
	DEFAULT_CHUNK_DELAY = 1 * time.Second

	generateRetryAttempts = 3
	generateRetryDelay    = 2 * time.Second
)

// Generator is the external generative-text capability. Production wires the
// OpenAI client; tests substitute deterministic fakes.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Recommender turns a set of negative reviews into a single prose report.
// Chunks are processed strictly in sequence with a fixed pause between calls
// to stay inside the provider's rate limits.
type Recommender struct {
	generator Generator
	delay     time.Duration
	metrics   *metrics.PipelineMetrics

	sleep func(time.Duration)
}

func NewRecommender(generator Generator, delay time.Duration, m *metrics.PipelineMetrics) *Recommender {
	if delay <= 0 {
		delay = DEFAULT_CHUNK_DELAY
	}
	return &Recommender{
		generator: generator,
		delay:     delay,
		metrics:   m,
		sleep:     time.Sleep,
	}
}

// Recommend partitions reviews into chunks of at most chunkSize, analyzes
// each chunk, then issues one aggregation call over the per-chunk analyses.
// A failed chunk contributes a placeholder instead of aborting the run, and
// a failed aggregation falls back to the concatenated chunk analyses, so the
// caller always gets some text back.
func (r *Recommender) Recommend(ctx context.Context, reviews []string, chunkSize int) string {
	if chunkSize <= 0 {
		chunkSize = DEFAULT_CHUNK_SIZE
	}

	start := time.Now()
	chunks := utils.ChunkSlice(reviews, chunkSize)
	slog.Info("[Recommender] Starting recommendation run",
		slog.Int("reviews", len(reviews)),
		slog.Int("chunks", len(chunks)))

	batchResults := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		if i > 0 {
			r.sleep(r.delay)
		}

		text, err := r.generateWithRetry(ctx, buildChunkPrompt(chunk))
		if err != nil {
			slog.Error("[Recommender] Chunk analysis failed",
				slog.Int("batch", i+1),
				slog.String("error", err.Error()))
			r.metrics.ObserveChunk("failed")
			text = fmt.Sprintf("Error processing batch %d: %s", i+1, err)
		} else {
			r.metrics.ObserveChunk("ok")
		}

		batchResults = append(batchResults, text)
	}

	report, err := r.generateWithRetry(ctx, buildSummaryPrompt(batchResults))
	if err != nil {
		slog.Warn("[Recommender] Aggregation failed, returning concatenated batch analyses",
			slog.String("error", err.Error()))
		report = strings.Join(batchResults, "\n\n---\n\n")
	}

	r.metrics.ObserveGeneration(time.Since(start))
	return report
}

func (r *Recommender) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	var text string
	var err error

	for attempt := 1; attempt <= generateRetryAttempts; attempt++ {
		text, err = r.generator.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		slog.Warn("[Recommender] Generation failed, retrying",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
		if attempt < generateRetryAttempts {
			r.sleep(generateRetryDelay)
		}
	}

	return "", err
}

func buildChunkPrompt(reviews []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a customer-experience consultant analyzing user feedback. Below are %d negative reviews:\n\n", len(reviews))
	for i, review := range reviews {
		fmt.Fprintf(&b, "%d. %s\n", i+1, review)
	}

	b.WriteString(`
Please provide:
1. **Key Issues Identified**: Summarize the main problems mentioned
2. **Common Themes**: What patterns do you see across these reviews?
3. **Priority Areas**: What should be addressed first?
4. **Specific Recommendations**: Actionable steps to improve

Keep your analysis concise and actionable.
`)

	return b.String()
}

func buildSummaryPrompt(batchResults []string) string {
	var b strings.Builder

	b.WriteString("Based on the following analyses of negative feedback batches, provide a comprehensive summary with actionable recommendations:\n\n")
	for i, result := range batchResults {
		fmt.Fprintf(&b, "### Batch %d Analysis:\n%s\n", i+1, result)
	}

	b.WriteString(`
Please provide:
1. **Overall Summary**: What are the most critical issues?
2. **Top 5 Recommendations**: Prioritized, actionable steps
3. **Quick Wins**: Easy improvements that can be implemented immediately
4. **Long-term Strategy**: Structural changes for sustained improvement

Format your response in clear markdown.
`)

	return b.String()
}
