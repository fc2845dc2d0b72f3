package usecase

import (
	"context"
	"errors"
	"testing"

	"sports-booking/internal/data/entity"
	"sports-booking/internal/dto/request"
	"sports-booking/pkg/apperr"

	"github.com/google/uuid"
)

func bookSlot(t *testing.T, service ReservationService, student entity.Principal, venueID, sportID uuid.UUID, slot string) string {
	t.Helper()
	resp, err := service.Create(context.Background(), student, &request.CreateReservationRequest{
		VenueID:  venueID.String(),
		SportID:  sportID.String(),
		TimeSlot: slot,
	})
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	return resp.ID
}

func TestSubmitOrderBundlesPendingReservations(t *testing.T) {
	repo, venueID, basketballID, swimmingID := newTestRepo()
	reservationService := NewReservationService(repo, testLogger())
	orderService := NewOrderService(repo, testLogger())
	student := entity.Principal{ID: uuid.New(), Role: entity.RoleStudent}

	bookSlot(t, reservationService, student, venueID, basketballID, "14:00-16:00")
	bookSlot(t, reservationService, student, venueID, swimmingID, "16:00-18:00")

	order, err := orderService.Submit(context.Background(), student)
	if err != nil {
		t.Fatalf("submit order: %v", err)
	}
	if order.Status != string(entity.OrderStatusSubmitted) {
		t.Fatalf("expected submitted status, got %q", order.Status)
	}
	if len(order.Reservations) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(order.Reservations))
	}

	names := map[string]bool{}
	for _, snapshot := range order.Reservations {
		names[snapshot.SportName] = true
	}
	if !names["篮球"] || !names["游泳"] {
		t.Fatalf("expected both sports snapshotted, got %v", names)
	}

	// Every bundled reservation is now included, not pending.
	list, err := reservationService.List(context.Background(), student)
	if err != nil {
		t.Fatalf("list reservations: %v", err)
	}
	for _, reservation := range list {
		if reservation.Status != string(entity.ReservationStatusIncluded) {
			t.Fatalf("expected included status, got %q", reservation.Status)
		}
	}
}

func TestSubmitOrderEmpty(t *testing.T) {
	repo, _, _, _ := newTestRepo()
	orderService := NewOrderService(repo, testLogger())
	student := entity.Principal{ID: uuid.New(), Role: entity.RoleStudent}

	_, err := orderService.Submit(context.Background(), student)
	if !errors.Is(err, apperr.ErrEmptyOrder) {
		t.Fatalf("expected empty order error, got %v", err)
	}

	orders, err := orderService.List(context.Background(), student)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no order created, got %d", len(orders))
	}
}

func TestSubmitOrderSkipsIncludedReservations(t *testing.T) {
	repo, venueID, basketballID, swimmingID := newTestRepo()
	reservationService := NewReservationService(repo, testLogger())
	orderService := NewOrderService(repo, testLogger())
	student := entity.Principal{ID: uuid.New(), Role: entity.RoleStudent}

	bookSlot(t, reservationService, student, venueID, basketballID, "14:00-16:00")
	if _, err := orderService.Submit(context.Background(), student); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	// A second submit only picks up reservations made since.
	bookSlot(t, reservationService, student, venueID, swimmingID, "16:00-18:00")
	second, err := orderService.Submit(context.Background(), student)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if len(second.Reservations) != 1 {
		t.Fatalf("expected 1 snapshot in second order, got %d", len(second.Reservations))
	}
	if second.Reservations[0].SportName != "游泳" {
		t.Fatalf("expected the new reservation only, got %q", second.Reservations[0].SportName)
	}
}

func TestSubmitOrderRejectsTeacher(t *testing.T) {
	repo, _, _, _ := newTestRepo()
	orderService := NewOrderService(repo, testLogger())
	teacher := entity.Principal{ID: uuid.New(), Role: entity.RoleTeacher}

	_, err := orderService.Submit(context.Background(), teacher)
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestApproveOrder(t *testing.T) {
	repo, venueID, basketballID, _ := newTestRepo()
	reservationService := NewReservationService(repo, testLogger())
	orderService := NewOrderService(repo, testLogger())
	student := entity.Principal{ID: uuid.New(), Role: entity.RoleStudent}
	teacher := entity.Principal{ID: uuid.New(), Role: entity.RoleTeacher}

	bookSlot(t, reservationService, student, venueID, basketballID, "12:00-14:00")
	order, err := orderService.Submit(context.Background(), student)
	if err != nil {
		t.Fatalf("submit order: %v", err)
	}

	approved, err := orderService.Approve(context.Background(), teacher, &request.ApproveOrderRequest{
		OrderID: order.ID,
		Approve: true,
	})
	if err != nil {
		t.Fatalf("approve order: %v", err)
	}
	if approved.Status != string(entity.OrderStatusApproved) {
		t.Fatalf("expected approved status, got %q", approved.Status)
	}

	// Approval is terminal, a repeat decision is a conflict.
	_, err = orderService.Approve(context.Background(), teacher, &request.ApproveOrderRequest{
		OrderID: order.ID,
		Approve: false,
	})
	if !errors.Is(err, apperr.ErrInvalidState) {
		t.Fatalf("expected invalid state on second decision, got %v", err)
	}
}

func TestRejectOrderKeepsReservationsIncluded(t *testing.T) {
	repo, venueID, basketballID, _ := newTestRepo()
	reservationService := NewReservationService(repo, testLogger())
	orderService := NewOrderService(repo, testLogger())
	student := entity.Principal{ID: uuid.New(), Role: entity.RoleStudent}
	teacher := entity.Principal{ID: uuid.New(), Role: entity.RoleTeacher}

	bookSlot(t, reservationService, student, venueID, basketballID, "12:00-14:00")
	order, err := orderService.Submit(context.Background(), student)
	if err != nil {
		t.Fatalf("submit order: %v", err)
	}

	rejected, err := orderService.Approve(context.Background(), teacher, &request.ApproveOrderRequest{
		OrderID: order.ID,
		Approve: false,
	})
	if err != nil {
		t.Fatalf("reject order: %v", err)
	}
	if rejected.Status != string(entity.OrderStatusRejected) {
		t.Fatalf("expected rejected status, got %q", rejected.Status)
	}

	// Rejection does not release the reservations back to pending.
	list, err := reservationService.List(context.Background(), student)
	if err != nil {
		t.Fatalf("list reservations: %v", err)
	}
	if len(list) != 1 || list[0].Status != string(entity.ReservationStatusIncluded) {
		t.Fatalf("expected reservation to stay included, got %+v", list)
	}
}

func TestApproveOrderRejectsStudent(t *testing.T) {
	repo, venueID, basketballID, _ := newTestRepo()
	reservationService := NewReservationService(repo, testLogger())
	orderService := NewOrderService(repo, testLogger())
	student := entity.Principal{ID: uuid.New(), Role: entity.RoleStudent}

	bookSlot(t, reservationService, student, venueID, basketballID, "12:00-14:00")
	order, err := orderService.Submit(context.Background(), student)
	if err != nil {
		t.Fatalf("submit order: %v", err)
	}

	_, err = orderService.Approve(context.Background(), student, &request.ApproveOrderRequest{
		OrderID: order.ID,
		Approve: true,
	})
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	orders, err := orderService.List(context.Background(), student)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if orders[0].Status != string(entity.OrderStatusSubmitted) {
		t.Fatalf("expected order untouched, got %q", orders[0].Status)
	}
}

func TestApproveOrderUnknown(t *testing.T) {
	repo, _, _, _ := newTestRepo()
	orderService := NewOrderService(repo, testLogger())
	teacher := entity.Principal{ID: uuid.New(), Role: entity.RoleTeacher}

	_, err := orderService.Approve(context.Background(), teacher, &request.ApproveOrderRequest{
		OrderID: uuid.NewString(),
		Approve: true,
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListOrdersScopedByRole(t *testing.T) {
	repo, venueID, basketballID, swimmingID := newTestRepo()
	reservationService := NewReservationService(repo, testLogger())
	orderService := NewOrderService(repo, testLogger())
	alice := entity.Principal{ID: uuid.New(), Role: entity.RoleStudent}
	bob := entity.Principal{ID: uuid.New(), Role: entity.RoleStudent}
	teacher := entity.Principal{ID: uuid.New(), Role: entity.RoleTeacher}

	bookSlot(t, reservationService, alice, venueID, basketballID, "12:00-14:00")
	if _, err := orderService.Submit(context.Background(), alice); err != nil {
		t.Fatalf("alice submit: %v", err)
	}
	bookSlot(t, reservationService, bob, venueID, swimmingID, "16:00-18:00")
	if _, err := orderService.Submit(context.Background(), bob); err != nil {
		t.Fatalf("bob submit: %v", err)
	}

	aliceOrders, err := orderService.List(context.Background(), alice)
	if err != nil {
		t.Fatalf("alice list: %v", err)
	}
	if len(aliceOrders) != 1 {
		t.Fatalf("expected alice to see 1 order, got %d", len(aliceOrders))
	}

	teacherOrders, err := orderService.List(context.Background(), teacher)
	if err != nil {
		t.Fatalf("teacher list: %v", err)
	}
	if len(teacherOrders) != 2 {
		t.Fatalf("expected teacher to see 2 orders, got %d", len(teacherOrders))
	}
}
