package dialogue

import (
	"time"

	"github.com/google/uuid"
)

// QRPayload is the structure encoded into a ticket's QR code.
type QRPayload struct {
	ID      string         `json:"id"`
	Date    string         `json:"date"`
	Time    string         `json:"time"`
	Tickets map[string]int `json:"tickets"`
	Total   int            `json:"total"`
}

// Ticket is emitted once per completed booking. The same ID is used inside
// the QR payload.
type Ticket struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Type           string    `json:"type"`
	TicketType     string    `json:"ticket_type"`
	Quantity       int       `json:"quantity"`
	PaymentMethod  string    `json:"payment_method"`
	Total          int       `json:"total"`
	QRPayload      QRPayload `json:"qr_payload"`
	QRCode         string    `json:"qr_code,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
