package response

import "time"

type QRPayloadResponse struct {
	ID      string         `json:"id"`
	Date    string         `json:"date"`
	Time    string         `json:"time"`
	Tickets map[string]int `json:"tickets"`
	Total   int            `json:"total"`
}

type TicketResponse struct {
	ID             string            `json:"id"`
	ConversationID string            `json:"conversation_id"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	Type           string            `json:"type"`
	TicketType     string            `json:"ticket_type"`
	Quantity       int               `json:"quantity"`
	PaymentMethod  string            `json:"payment_method"`
	Total          int               `json:"total"`
	QRPayload      QRPayloadResponse `json:"qr_payload"`
	QRCode         string            `json:"qr_code,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

type QRCodeResponse struct {
	ID      string `json:"id"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}
