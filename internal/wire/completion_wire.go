package wire

import (
	"context"
	"fmt"

	"museum-chat/internal/completion"
	"museum-chat/pkg/utils"

	"go.uber.org/zap"
)

// buildProviders returns the chain DeepSeek, OpenAI, Gemini. Providers
// without an API key are left out.
func buildProviders(ctx context.Context, cfg utils.AIConfig, log *zap.Logger) ([]completion.Provider, []func() error, error) {
	params := completion.Params{Temperature: cfg.Temperature, MaxTokens: cfg.MaxTokens}

	var (
		providers []completion.Provider
		closers   []func() error
	)

	if cfg.DeepSeekAPIKey != "" {
		providers = append(providers, completion.NewOpenAIProvider("deepseek", cfg.DeepSeekAPIKey, cfg.DeepSeekBaseURL, cfg.DeepSeekModel, params))
	}
	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, completion.NewOpenAIProvider("openai", cfg.OpenAIAPIKey, "", cfg.OpenAIModel, params))
	}
	if cfg.GeminiAPIKey != "" {
		gemini, err := completion.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, params)
		if err != nil {
			return nil, nil, fmt.Errorf("gemini provider: %w", err)
		}
		providers = append(providers, gemini)
		closers = append(closers, gemini.Close)
	}

	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}
	if len(providers) == 0 {
		log.Warn("No AI provider configured, free text questions get the fallback answer")
	} else {
		log.Info("Completion providers configured", zap.Strings("providers", names))
	}

	return providers, closers, nil
}
