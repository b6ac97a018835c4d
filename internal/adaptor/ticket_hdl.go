package adaptor

import (
	"net/http"

	"museum-chat/internal/usecase"
	"museum-chat/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// GetTicket handles GET /api/tickets/{id}
func (h *TicketHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.service.GetTicket(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "get ticket")
		return
	}

	utils.ResponseSuccess(w, "success", ticket)
}

// GetQRCode handles GET /api/tickets/{id}/qr
func (h *TicketHandler) GetQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.service.GetQRCodePNG(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "get ticket qr code")
		return
	}

	w.Header().Set("Cache-Control", "private, max-age=3600")
	utils.ResponseFile(w, "image/png", "", png)
}

// GetPDF handles GET /api/tickets/{id}/pdf
func (h *TicketHandler) GetPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pdf, err := h.service.GetTicketPDF(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err, "get ticket pdf")
		return
	}

	utils.ResponseFile(w, "application/pdf", "biglietto-"+id+".pdf", pdf)
}

// VerifyQRCode handles GET /api/qrcode?id=
func (h *TicketHandler) VerifyQRCode(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		utils.ResponseBadRequest(w, "ID mancante", nil)
		return
	}

	payload, err := h.service.VerifyQRCode(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err, "verify qr code")
		return
	}

	utils.ResponseSuccess(w, "success", payload)
}
