package response

import (
	"time"

	"sports-booking/internal/data/entity"
)

type OrderReservationResponse struct {
	ReservationID string `json:"reservationId"`
	VenueName     string `json:"venueName"`
	SportName     string `json:"sportName"`
	TimeSlot      string `json:"timeSlot"`
}

type OrderResponse struct {
	ID           string                     `json:"oid"`
	UserID       string                     `json:"userId"`
	StudentName  string                     `json:"studentName"`
	Status       string                     `json:"status"`
	Reservations []OrderReservationResponse `json:"orderReservations"`
	CreatedAt    time.Time                  `json:"createdAt"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	reservations := make([]OrderReservationResponse, len(order.Reservations))
	for i, snapshot := range order.Reservations {
		reservations[i] = OrderReservationResponse{
			ReservationID: snapshot.ReservationID.String(),
			VenueName:     snapshot.VenueName,
			SportName:     snapshot.SportName,
			TimeSlot:      string(snapshot.TimeSlot),
		}
	}

	return OrderResponse{
		ID:           order.ID.String(),
		UserID:       order.UserID.String(),
		StudentName:  order.StudentName,
		Status:       string(order.Status),
		Reservations: reservations,
		CreatedAt:    order.CreatedAt,
	}
}
