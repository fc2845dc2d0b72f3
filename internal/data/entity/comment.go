package entity

import "github.com/google/uuid"

type Comment struct {
	BaseSimple
	VenueID uuid.UUID `db:"venue_id"`
	UserID  uuid.UUID `db:"user_id"`
	Content string    `db:"content"`

	// Filled by joins, not a column.
	UserName string `db:"-"`
}
