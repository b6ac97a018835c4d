package request

type CreateReservationRequest struct {
	Nome    string `json:"nome" validate:"required,max=100"`
	Giorno  string `json:"giorno" validate:"required,max=30"`
	Persone int    `json:"persone" validate:"required,min=1,max=50"`
}
