package entity

import "github.com/google/uuid"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusIncluded  ReservationStatus = "included"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// TimeSlot is one of the fixed bookable periods. The set matches what the
// venue detail page offers; there is no free-form scheduling.
type TimeSlot string

const (
	TimeSlotNoon      TimeSlot = "12:00-14:00"
	TimeSlotAfternoon TimeSlot = "14:00-16:00"
	TimeSlotLate      TimeSlot = "16:00-18:00"
	TimeSlotEvening   TimeSlot = "18:00-20:00"
)

// TimeSlots lists every bookable slot in display order.
var TimeSlots = []TimeSlot{
	TimeSlotNoon,
	TimeSlotAfternoon,
	TimeSlotLate,
	TimeSlotEvening,
}

func (t TimeSlot) Valid() bool {
	for _, slot := range TimeSlots {
		if t == slot {
			return true
		}
	}
	return false
}

type Reservation struct {
	Base
	UserID   uuid.UUID         `db:"user_id"`
	VenueID  uuid.UUID         `db:"venue_id"`
	SportID  uuid.UUID         `db:"sport_id"`
	TimeSlot TimeSlot          `db:"time_slot"`
	Status   ReservationStatus `db:"status"`

	// Filled by joins, not columns.
	VenueName string `db:"-"`
	SportName string `db:"-"`
}
