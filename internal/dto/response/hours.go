package response

type OpeningHourResponse struct {
	ID       int64  `json:"id"`
	Giorno   string `json:"giorno"`
	Apertura string `json:"apertura"`
	Chiusura string `json:"chiusura"`
}
