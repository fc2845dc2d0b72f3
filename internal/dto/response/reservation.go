package response

import (
	"time"

	"sports-booking/internal/data/entity"
)

type ReservationResponse struct {
	ID        string    `json:"rid"`
	VenueID   string    `json:"venueId"`
	SportID   string    `json:"sportId"`
	VenueName string    `json:"venueName"`
	SportName string    `json:"sportName"`
	TimeSlot  string    `json:"timeSlot"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func ReservationToResponse(reservation *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        reservation.ID.String(),
		VenueID:   reservation.VenueID.String(),
		SportID:   reservation.SportID.String(),
		VenueName: reservation.VenueName,
		SportName: reservation.SportName,
		TimeSlot:  string(reservation.TimeSlot),
		Status:    string(reservation.Status),
		CreatedAt: reservation.CreatedAt,
	}
}
