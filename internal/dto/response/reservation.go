package response

import "time"

type ReservationResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Giorno    string    `json:"giorno"`
	Persone   int       `json:"persone"`
	Timestamp time.Time `json:"timestamp"`
}
