package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiProvider struct {
	client *genai.Client
	model  string
	params Params
}

func NewGeminiProvider(ctx context.Context, apiKey, model string, params Params) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model, params: params}, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) Complete(ctx context.Context, messages []Turn) (string, error) {
	model := p.client.GenerativeModel(p.model)
	model.SetTemperature(p.params.Temperature)
	if p.params.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(p.params.MaxTokens))
	}

	system, history, last, err := geminiTurns(messages)
	if err != nil {
		return "", err
	}
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	chat := model.StartChat()
	chat.History = history

	resp, err := chat.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// geminiTurns splits messages into the system instruction, the chat history
// and the message to send. Gemini wants the history to open with a user turn,
// so assistant turns before the first user message (the greeting) are dropped.
func geminiTurns(messages []Turn) (string, []*genai.Content, string, error) {
	var system []string
	var turns []Turn
	for _, m := range messages {
		switch {
		case m.Role == RoleSystem:
			system = append(system, m.Content)
		case m.Role == RoleAssistant && len(turns) == 0:
			// leading greeting
		default:
			turns = append(turns, m)
		}
	}
	if len(turns) == 0 || turns[len(turns)-1].Role != RoleUser {
		return "", nil, "", errors.New("gemini: no user message to answer")
	}

	history := make([]*genai.Content, 0, len(turns)-1)
	for _, t := range turns[:len(turns)-1] {
		role := "user"
		if t.Role == RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(t.Content)}})
	}

	return strings.Join(system, "\n"), history, turns[len(turns)-1].Content, nil
}

func (p *GeminiProvider) Close() error {
	return p.client.Close()
}
