package entity

import "github.com/google/uuid"

type Sport struct {
	BaseSimple
	VenueID uuid.UUID `db:"venue_id"`
	Name    string    `db:"name"`
}
