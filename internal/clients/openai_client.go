package clients

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	openAIRequestTimeout = 60 * time.Second // Timeout for individual OpenAI API requests
)

var (
	openAIClientInstance *OpenAIClient
	openAIOnce           sync.Once
)

type OpenAIClient struct {
	Client *openai.Client
}

// GetOpenAIClient returns the shared OpenAI client. A missing credential is
// reported as an error rather than a panic so the analyze path, which never
// talks to OpenAI, keeps working without one.
func GetOpenAIClient() (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("missing OPENAI_API_KEY in environment variables")
	}
	openAIOnce.Do(func() {
		httpClient := &http.Client{
			Timeout: openAIRequestTimeout,
		}

		openAIClientInstance = &OpenAIClient{
			Client: openai.NewClient(
				option.WithAPIKey(apiKey),
				option.WithHTTPClient(httpClient),
				option.WithHeader("User-Agent", USER_AGENT),
			),
		}
		slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout",
			slog.Duration("timeout", openAIRequestTimeout))
	})
	return openAIClientInstance, nil
}
