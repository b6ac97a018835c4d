package wire

import (
	"net/http"

	"museum-chat/internal/adaptor"
	"museum-chat/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	limiter *middleware.RateLimiter,
	admin func(http.Handler) http.Handler,
) {
	r.With(limiter.Handler).Post("/api/prenotazioni", reservationHandler.CreateReservation)
	r.Get("/api/prenotazioni", reservationHandler.GetReservation)

	r.Route("/api/admin/prenotazioni", func(r chi.Router) {
		r.Use(admin)
		r.Get("/", reservationHandler.ListReservations)
	})
}
