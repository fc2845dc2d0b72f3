package entity

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusSubmitted OrderStatus = "submitted"
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusRejected  OrderStatus = "rejected"
)

// Terminal reports whether no further transition is allowed. Orders move
// submitted → approved or submitted → rejected and never leave a terminal
// state.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusApproved || s == OrderStatusRejected
}

// DecisionStatus maps the approve flag of an approval request to the
// terminal status it asks for.
func DecisionStatus(approve bool) OrderStatus {
	if approve {
		return OrderStatusApproved
	}
	return OrderStatusRejected
}

type Order struct {
	Base
	UserID uuid.UUID   `db:"user_id"`
	Status OrderStatus `db:"status"`

	// Filled by joins, not columns.
	StudentName  string              `db:"-"`
	Reservations []*OrderReservation `db:"-"`
}
