package adaptor

import (
	"errors"
	"net/http"

	"museum-chat/internal/usecase"
	"museum-chat/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Chat        *ChatHandler
	Hours       *HoursHandler
	Reservation *ReservationHandler
	Ticket      *TicketHandler
	Catalog     *CatalogHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Chat:        NewChatHandler(service.Chat, service.FAQ, log),
		Hours:       NewHoursHandler(service.Hours, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		Ticket:      NewTicketHandler(service.Ticket, log),
		Catalog:     NewCatalogHandler(service.Catalog),
	}
}

// writeServiceError maps usecase errors to status codes.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrInvalidID):
		log.Warn(operation+" rejected", zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound), errors.Is(err, usecase.ErrConversationNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err), zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error(operation+" failed", zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Si è verificato un errore nel processare la richiesta")
	}
}
