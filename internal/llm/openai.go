package llm

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ChatProvider implements Provider against any OpenAI-compatible chat
// completions server, using the same sampling bounds as the native client.
type ChatProvider struct {
	Inner *openai.Client
}

// NewChatProvider builds a ChatProvider for the given base URL and optional
// API key.
func NewChatProvider(baseURL, apiKey string) *ChatProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &ChatProvider{Inner: openai.NewClientWithConfig(cfg)}
}

func (p *ChatProvider) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := p.Inner.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: samplingTemperature,
		TopP:        samplingTopP,
		MaxTokens:   samplingMaxTokens,
		N:           1,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
