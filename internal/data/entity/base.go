package entity

import (
	"time"

	"github.com/google/uuid"
)

// Record holds the columns shared by the uuid-keyed tables (prenotazioni,
// tickets). orari keeps its serial id.
type Record struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
