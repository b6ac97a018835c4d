package wire

import (
	"context"
	"fmt"
	"net/http"

	"museum-chat/internal/adaptor"
	"museum-chat/internal/catalog"
	"museum-chat/internal/completion"
	"museum-chat/internal/data/repository"
	"museum-chat/internal/data/store"
	"museum-chat/internal/dialogue"
	"museum-chat/internal/usecase"
	"museum-chat/pkg/middleware"
	"museum-chat/pkg/qrcode"
	"museum-chat/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const museumName = "Museo del Clima"

// Infra holds the storage built by main.
type Infra struct {
	Conversations store.ConversationStore
	HoursCache    store.HoursCache
}

type App struct {
	Router  *chi.Mux
	Service *usecase.Service
	closers []func() error
}

// Close releases the completion clients.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func Wiring(ctx context.Context, repo *repository.Repository, infra Infra, config *utils.Config, logger *zap.Logger) (*App, error) {
	tickets := catalog.DefaultTickets()
	if config.Chat.TicketCatalog != "" {
		parsed, err := catalog.ParseTickets(config.Chat.TicketCatalog)
		if err != nil {
			return nil, fmt.Errorf("ticket catalog: %w", err)
		}
		tickets = parsed
	}
	payments := catalog.DefaultPaymentMethods()

	resolver, err := middleware.NewIPResolver(config.App.TrustedProxies)
	if err != nil {
		return nil, err
	}

	hours := usecase.NewHoursService(repo, infra.HoursCache, logger)

	providers, closers, err := buildProviders(ctx, config.AI, logger)
	if err != nil {
		return nil, err
	}
	gateway := completion.NewGateway(completion.GatewayConfig{Timeout: config.AI.Timeout}, providers, hours, logger)

	service := usecase.NewService(repo, usecase.Deps{
		Conversations: infra.Conversations,
		HoursCache:    infra.HoursCache,
		Hours:         hours,
		Completer:     gateway,
		QR:            qrcode.NewEncoder(256),
		Tickets:       tickets,
		Payments:      payments,
		Dialogue: dialogue.Config{
			MaxRetries:    config.Chat.MaxRetries,
			HistoryWindow: config.Chat.HistoryWindow,
			MaxQuantity:   config.Chat.MaxQuantity,
		},
		MuseumName: museumName,
	}, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, resolver, config, logger)

	return &App{
		Router:  router,
		Service: service,
		closers: closers,
	}, nil
}

func setupRouter(handler *adaptor.Handler, resolver *middleware.IPResolver, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP(resolver))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))

	limiter := middleware.NewRateLimiter(config.RateLimit.RequestsPerSecond, config.RateLimit.Burst, logger)
	admin := middleware.AdminKey(config.Admin.KeyHash, logger)

	wireChat(r, handler.Chat, limiter)
	wireHours(r, handler.Hours, admin)
	wireReservation(r, handler.Reservation, limiter, admin)
	wireTicket(r, handler.Ticket, handler.Catalog)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
