package entity

import (
	"github.com/google/uuid"
)

// Ticket is a ticket emitted by the chat booking flow.
type Ticket struct {
	Record
	ConversationID uuid.UUID `db:"conversation_id"`
	VisitDate      string    `db:"visit_date"`
	VisitTime      string    `db:"visit_time"`
	TicketType     string    `db:"ticket_type"`
	Quantity       int       `db:"quantity"`
	PaymentMethod  string    `db:"payment_method"`
	Total          int       `db:"total"`
	QRPayload      []byte    `db:"qr_payload"`
}
