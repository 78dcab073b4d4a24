package advice

import (
	"context"
	"errors"
	"time"

	"github.com/mishap29/Lifestyle-Coach/internal"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator calls the chat completions API with a bounded timeout.
type OpenAIGenerator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  internal.Logger
}

func NewOpenAIGenerator(apiKey, model string, timeout time.Duration, logger internal.Logger) *OpenAIGenerator {
	return &OpenAIGenerator{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		g.logger.Errorf("chat completion failed: %v", err)
		return "", &ServiceError{Op: "chat completion", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ServiceError{Op: "chat completion", Err: errors.New("no choices in response")}
	}
	return resp.Choices[0].Message.Content, nil
}

var _ Generator = (*OpenAIGenerator)(nil)
