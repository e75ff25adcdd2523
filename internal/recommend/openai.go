package recommend

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"

	"github.com/spacesedan/reviewflow/internal/clients"
)

// OpenAIGenerator adapts the shared OpenAI client to the Generator interface.
type OpenAIGenerator struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAIGenerator(model string) (*OpenAIGenerator, error) {
	client, err := clients.GetOpenAIClient()
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = string(openai.ChatModelGPT4oMini)
	}
	return &OpenAIGenerator{
		client: client.Client,
		model:  openai.ChatModel(model),
	}, nil
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		Model:       openai.F(g.model),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return "", errors.New("model returned an empty completion")
	}

	return completion.Choices[0].Message.Content, nil
}
