package wire

import (
	"museum-chat/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler, catalogHandler *adaptor.CatalogHandler) {
	r.Route("/api/tickets/{id}", func(r chi.Router) {
		r.Get("/", ticketHandler.GetTicket)
		r.Get("/qr", ticketHandler.GetQRCode)
		r.Get("/pdf", ticketHandler.GetPDF)
	})

	r.Get("/api/qrcode", ticketHandler.VerifyQRCode)

	r.Get("/api/catalog/tickets", catalogHandler.TicketTypes)
	r.Get("/api/catalog/payment-methods", catalogHandler.PaymentMethods)
}
