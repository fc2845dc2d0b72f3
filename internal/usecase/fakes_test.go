package usecase

import (
	"context"
	"time"

	"sports-booking/internal/data/entity"
	"sports-booking/internal/data/repository"
	"sports-booking/pkg/apperr"
	"sports-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory fakes backing the service tests. The reservation and order
// fakes share the reservation slice so a submitted order flips the same
// rows a student later tries to delete.

type fakeVenueRepo struct {
	venues []*entity.Venue
}

func (f *fakeVenueRepo) Create(ctx context.Context, venue *entity.Venue) error {
	f.venues = append(f.venues, venue)
	return nil
}

func (f *fakeVenueRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	for _, venue := range f.venues {
		if venue.ID == id {
			return venue, nil
		}
	}
	return nil, nil
}

func (f *fakeVenueRepo) FindAll(ctx context.Context) ([]*entity.Venue, error) {
	return f.venues, nil
}

func (f *fakeVenueRepo) Search(ctx context.Context, keyword string) ([]*entity.Venue, error) {
	return f.venues, nil
}

func (f *fakeVenueRepo) Update(ctx context.Context, venue *entity.Venue) error {
	for i, existing := range f.venues {
		if existing.ID == venue.ID {
			f.venues[i] = venue
		}
	}
	return nil
}

func (f *fakeVenueRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, venue := range f.venues {
		if venue.ID == id {
			f.venues = append(f.venues[:i], f.venues[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeSportRepo struct {
	sports []*entity.Sport
}

func (f *fakeSportRepo) Create(ctx context.Context, sport *entity.Sport) error {
	f.sports = append(f.sports, sport)
	return nil
}

func (f *fakeSportRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sport, error) {
	for _, sport := range f.sports {
		if sport.ID == id {
			return sport, nil
		}
	}
	return nil, nil
}

func (f *fakeSportRepo) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.Sport, error) {
	var out []*entity.Sport
	for _, sport := range f.sports {
		if sport.VenueID == venueID {
			out = append(out, sport)
		}
	}
	return out, nil
}

func (f *fakeSportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, sport := range f.sports {
		if sport.ID == id {
			f.sports = append(f.sports[:i], f.sports[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Phone == phone {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, existing := range f.users {
		if existing.ID == user.ID {
			f.users[i] = user
		}
	}
	return nil
}

type fakeSessionRepo struct {
	sessions []*entity.Session
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}
	for _, session := range f.sessions {
		if session.Token == parsed && session.RevokedAt == nil && session.ExpiresAt.After(time.Now()) {
			return session, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return nil
	}
	now := time.Now()
	for _, session := range f.sessions {
		if session.Token == parsed && session.RevokedAt == nil {
			session.RevokedAt = &now
		}
	}
	return nil
}

type fakeCommentRepo struct {
	comments []*entity.Comment
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeCommentRepo) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, comment := range f.comments {
		if comment.VenueID == venueID {
			out = append(out, comment)
		}
	}
	return out, nil
}

type fakeReservationRepo struct {
	reservations []*entity.Reservation
}

func (f *fakeReservationRepo) Create(ctx context.Context, reservation *entity.Reservation) error {
	f.reservations = append(f.reservations, reservation)
	return nil
}

func (f *fakeReservationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	for _, reservation := range f.reservations {
		if reservation.ID == id {
			return reservation, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, reservation := range f.reservations {
		if reservation.UserID == userID {
			out = append(out, reservation)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) DeletePending(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	for i, reservation := range f.reservations {
		if reservation.ID == id && reservation.UserID == userID && reservation.Status == entity.ReservationStatusPending {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeOrderRepo struct {
	reservations *fakeReservationRepo
	orders       []*entity.Order
}

func (f *fakeOrderRepo) Submit(ctx context.Context, order *entity.Order) error {
	var snapshots []*entity.OrderReservation
	for _, reservation := range f.reservations.reservations {
		if reservation.UserID != order.UserID || reservation.Status != entity.ReservationStatusPending {
			continue
		}
		snapshots = append(snapshots, &entity.OrderReservation{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: order.CreatedAt,
			},
			OrderID:       order.ID,
			ReservationID: reservation.ID,
			VenueName:     reservation.VenueName,
			SportName:     reservation.SportName,
			TimeSlot:      reservation.TimeSlot,
		})
		reservation.Status = entity.ReservationStatusIncluded
	}
	if len(snapshots) == 0 {
		return apperr.ErrEmptyOrder
	}
	order.Reservations = snapshots
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	for _, order := range f.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]*entity.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepo) ApproveIfSubmitted(ctx context.Context, id uuid.UUID, status entity.OrderStatus, now time.Time) (bool, error) {
	for _, order := range f.orders {
		if order.ID == id && order.Status == entity.OrderStatusSubmitted {
			order.Status = status
			order.UpdatedAt = now
			return true, nil
		}
	}
	return false, nil
}

// newTestRepo builds a repository over the fakes with one venue offering
// two sports, and returns the IDs the tests book against.
func newTestRepo() (*repository.Repository, uuid.UUID, uuid.UUID, uuid.UUID) {
	venueID := uuid.New()
	basketballID := uuid.New()
	swimmingID := uuid.New()

	venueRepo := &fakeVenueRepo{venues: []*entity.Venue{{
		Base: entity.Base{ID: venueID},
		Name: "Campus Gym",
	}}}
	sportRepo := &fakeSportRepo{sports: []*entity.Sport{
		{BaseSimple: entity.BaseSimple{ID: basketballID}, VenueID: venueID, Name: "篮球"},
		{BaseSimple: entity.BaseSimple{ID: swimmingID}, VenueID: venueID, Name: "游泳"},
	}}
	reservationRepo := &fakeReservationRepo{}
	orderRepo := &fakeOrderRepo{reservations: reservationRepo}

	repo := &repository.Repository{
		User:        &fakeUserRepo{},
		Session:     &fakeSessionRepo{},
		Venue:       venueRepo,
		Sport:       sportRepo,
		Comment:     &fakeCommentRepo{},
		Reservation: reservationRepo,
		Order:       orderRepo,
	}
	return repo, venueID, basketballID, swimmingID
}

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
