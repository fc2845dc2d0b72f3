package entity

import "github.com/google/uuid"

// OrderReservation is a denormalized snapshot of one reservation at the
// moment its order was submitted. Venue and sport names are copied so that
// later catalog edits never alter historical orders.
type OrderReservation struct {
	BaseSimple
	OrderID       uuid.UUID `db:"order_id"`
	ReservationID uuid.UUID `db:"reservation_id"`
	VenueName     string    `db:"venue_name"`
	SportName     string    `db:"sport_name"`
	TimeSlot      TimeSlot  `db:"time_slot"`
}
