package request

type UpdateOpeningHourRequest struct {
	Giorno   string `json:"giorno" validate:"required,max=20"`
	Apertura string `json:"apertura" validate:"required,max=10"`
	Chiusura string `json:"chiusura" validate:"required,max=10"`
}
