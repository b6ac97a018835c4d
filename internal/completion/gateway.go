package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FallbackMessage is returned instead of an error when no provider answered.
const FallbackMessage = "Mi dispiace, al momento non sono in grado di rispondere. Il servizio di assistenza virtuale è temporaneamente non disponibile. Per favore, riprova più tardi o contatta direttamente il museo."

const DefaultSystemPrompt = `Sei un assistente virtuale del Museo del Clima.
Informazioni sul museo:
- Orari: Lunedì-Venerdì 9:00-18:00, Sabato 10:00-20:00, Domenica 10:00-19:00
- Prezzi: Intero €15, Ridotto €10, Bambino €8, Famiglia €35
- Metodi di pagamento: Carta di Credito, PayPal, Bonifico

Rispondi in modo professionale e conciso. Se l'utente vuole prenotare, invitalo a scrivere "prenota".`

var ErrEmptyResponse = errors.New("provider returned empty content")

// IsFallback reports whether text is the degraded-service sentence.
func IsFallback(text string) bool {
	return strings.TrimSpace(text) == FallbackMessage
}

// Provider is one upstream language model.
type Provider interface {
	Name() string
	Complete(ctx context.Context, messages []Turn) (string, error)
}

// ContextSource adds live data (opening hours, availability) to the system
// prompt.
type ContextSource interface {
	PromptContext(ctx context.Context, lastUserMessage string) string
}

type Params struct {
	Temperature float32
	MaxTokens   int
}

type GatewayConfig struct {
	SystemPrompt string
	Timeout      time.Duration
}

// Gateway tries providers in order and never fails: when every provider is
// unavailable it answers with FallbackMessage.
type Gateway struct {
	providers    []Provider
	systemPrompt string
	timeout      time.Duration
	source       ContextSource
	log          *zap.Logger
}

func NewGateway(cfg GatewayConfig, providers []Provider, source ContextSource, log *zap.Logger) *Gateway {
	prompt := cfg.SystemPrompt
	if prompt == "" {
		prompt = DefaultSystemPrompt
	}

	return &Gateway{
		providers:    providers,
		systemPrompt: prompt,
		timeout:      cfg.Timeout,
		source:       source,
		log:          log.With(zap.String("service", "completion")),
	}
}

func (g *Gateway) Complete(ctx context.Context, history []Turn) string {
	if len(g.providers) == 0 {
		g.log.Warn("No completion provider configured")
		return FallbackMessage
	}

	messages := g.buildMessages(ctx, history)

	for _, p := range g.providers {
		content, err := g.call(ctx, p, messages)
		if err != nil {
			g.log.Warn("Completion provider failed",
				zap.String("provider", p.Name()),
				zap.Error(err))
			continue
		}
		return content
	}

	g.log.Error("All completion providers failed", zap.Int("providers", len(g.providers)))
	return FallbackMessage
}

func (g *Gateway) buildMessages(ctx context.Context, history []Turn) []Turn {
	prompt := g.systemPrompt
	if g.source != nil {
		var last string
		for i := len(history) - 1; i >= 0; i-- {
			if history[i].Role == RoleUser {
				last = history[i].Content
				break
			}
		}
		if extra := g.source.PromptContext(ctx, last); extra != "" {
			prompt += "\n" + extra
		}
	}

	messages := make([]Turn, 0, len(history)+1)
	messages = append(messages, Turn{Role: RoleSystem, Content: prompt})
	for _, t := range history {
		if t.Role == RoleSystem {
			continue
		}
		messages = append(messages, t)
	}
	return messages
}

func (g *Gateway) call(ctx context.Context, p Provider, messages []Turn) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider %s panicked: %v", p.Name(), r)
		}
	}()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	content, err = p.Complete(ctx, messages)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}
