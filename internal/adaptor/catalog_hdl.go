package adaptor

import (
	"net/http"

	"museum-chat/internal/usecase"
	"museum-chat/pkg/utils"
)

type CatalogHandler struct {
	service usecase.CatalogService
}

func NewCatalogHandler(service usecase.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// TicketTypes handles GET /api/catalog/tickets
func (h *CatalogHandler) TicketTypes(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.TicketTypes())
}

// PaymentMethods handles GET /api/catalog/payment-methods
func (h *CatalogHandler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.PaymentMethods())
}
