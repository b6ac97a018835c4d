package usecase

import (
	"museum-chat/internal/catalog"
	"museum-chat/internal/data/repository"
	"museum-chat/internal/data/store"
	"museum-chat/internal/dialogue"

	"go.uber.org/zap"
)

type Service struct {
	Chat        ChatService
	Hours       HoursService
	Reservation ReservationService
	Ticket      TicketService
	FAQ         FAQService
	Catalog     CatalogService
}

// Deps carries what the services need beyond the repositories.
type Deps struct {
	Conversations store.ConversationStore
	HoursCache    store.HoursCache
	Completer     dialogue.Completer
	QR            QRRenderer
	Tickets       *catalog.Tickets
	Payments      *catalog.PaymentMethods
	Dialogue      dialogue.Config
	MuseumName    string

	// Hours is set when the caller already built it as prompt context for
	// the completion gateway.
	Hours HoursService
}

func NewService(repo *repository.Repository, deps Deps, log *zap.Logger) *Service {
	hours := deps.Hours
	if hours == nil {
		hours = NewHoursService(repo, deps.HoursCache, log)
	}

	return &Service{
		Chat: NewChatService(repo, deps.Conversations, ChatDeps{
			Dialogue:  deps.Dialogue,
			Catalog:   dialogue.Deps{Tickets: deps.Tickets, Payments: deps.Payments},
			Completer: deps.Completer,
			QR:        deps.QR,
		}, log),
		Hours:       hours,
		Reservation: NewReservationService(repo, log),
		Ticket:      NewTicketService(repo, deps.Payments, deps.QR, deps.MuseumName, log),
		FAQ:         NewFAQService(hours, log),
		Catalog:     NewCatalogService(deps.Tickets, deps.Payments),
	}
}
