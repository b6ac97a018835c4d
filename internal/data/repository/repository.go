package repository

import (
	"museum-chat/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	OpeningHour OpeningHourRepository
	Reservation ReservationRepository
	Ticket      TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		OpeningHour: NewOpeningHourRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Ticket:      NewTicketRepository(db, log),
	}
}
