package completion

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const DeepSeekBaseURL = "https://api.deepseek.com/v1"

// OpenAIProvider talks to any OpenAI-compatible chat completions API
// (OpenAI itself, DeepSeek).
type OpenAIProvider struct {
	name   string
	model  string
	params Params
	client *openai.Client
}

func NewOpenAIProvider(name, apiKey, baseURL, model string, params Params) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIProvider{
		name:   name,
		model:  model,
		params: params,
		client: openai.NewClientWithConfig(cfg),
	}
}

func (p *OpenAIProvider) Name() string {
	return p.name
}

func (p *OpenAIProvider) Complete(ctx context.Context, messages []Turn) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: p.params.Temperature,
		MaxTokens:   p.params.MaxTokens,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s chat completion: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
