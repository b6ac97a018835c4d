package wire

import (
	"net/http"

	"museum-chat/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHours(r chi.Router, hoursHandler *adaptor.HoursHandler, admin func(http.Handler) http.Handler) {
	r.Get("/api/orari", hoursHandler.GetOpeningHours)

	r.Route("/api/admin/orari", func(r chi.Router) {
		r.Use(admin)
		r.Put("/{id}", hoursHandler.UpdateOpeningHour)
	})
}
