package entity

import "time"

// OpeningHour is one row of the "orari" table.
type OpeningHour struct {
	ID        int64     `db:"id"`
	Day       string    `db:"giorno"`
	Opens     string    `db:"apertura"`
	Closes    string    `db:"chiusura"`
	CreatedAt time.Time `db:"created_at"`
}

// DefaultOpeningHours is the week used to seed an empty table.
func DefaultOpeningHours() []*OpeningHour {
	return []*OpeningHour{
		{Day: "Lunedì", Opens: "9:00", Closes: "18:00"},
		{Day: "Martedì", Opens: "9:00", Closes: "18:00"},
		{Day: "Mercoledì", Opens: "9:00", Closes: "18:00"},
		{Day: "Giovedì", Opens: "9:00", Closes: "18:00"},
		{Day: "Venerdì", Opens: "9:00", Closes: "18:00"},
		{Day: "Sabato", Opens: "10:00", Closes: "20:00"},
		{Day: "Domenica", Opens: "10:00", Closes: "20:00"},
	}
}
