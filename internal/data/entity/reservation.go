package entity

import "time"

// Reservation is one row of the "prenotazioni" table.
type Reservation struct {
	Record
	Name      string    `db:"nome"`
	Day       string    `db:"giorno"`
	People    int       `db:"persone"`
	Timestamp time.Time `db:"timestamp"`
}
