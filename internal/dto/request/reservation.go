package request

type CreateReservationRequest struct {
	VenueID  string `json:"venueId" validate:"required,uuid"`
	SportID  string `json:"sportId" validate:"required,uuid"`
	TimeSlot string `json:"timeSlot" validate:"required,oneof=12:00-14:00 14:00-16:00 16:00-18:00 18:00-20:00"`
}
