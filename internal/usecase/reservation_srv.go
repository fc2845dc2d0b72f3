package usecase

import (
	"context"
	"time"

	"sports-booking/internal/data/entity"
	"sports-booking/internal/data/repository"
	"sports-booking/internal/dto/request"
	"sports-booking/internal/dto/response"
	"sports-booking/pkg/apperr"
	"sports-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	// Create books one venue/sport/time-slot hold for the student. There is
	// deliberately no uniqueness check on (student, venue, sport, slot);
	// booking the same slot twice is allowed, matching the observed product
	// behavior.
	Create(ctx context.Context, principal entity.Principal, req *request.CreateReservationRequest) (*response.ReservationResponse, error)

	List(ctx context.Context, principal entity.Principal) ([]response.ReservationResponse, error)

	// Delete removes a pending reservation owned by the caller. A
	// reservation already bundled into an order cannot be deleted.
	Delete(ctx context.Context, principal entity.Principal, reservationID string) error
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) Create(ctx context.Context, principal entity.Principal, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if err := authorize(principal, entity.RoleStudent); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, apperr.Validationf("%s", utils.FormatValidationErrors(errs))
	}

	timeSlot := entity.TimeSlot(req.TimeSlot)
	if !timeSlot.Valid() {
		return nil, apperr.Validationf("unknown time slot %s", req.TimeSlot)
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, apperr.Validationf("invalid venue ID %s", req.VenueID)
	}
	sportID, err := uuid.Parse(req.SportID)
	if err != nil {
		return nil, apperr.Validationf("invalid sport ID %s", req.SportID)
	}

	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, apperr.NotFoundf("venue %s", req.VenueID)
	}

	sport, err := s.repo.Sport.FindByID(ctx, sportID)
	if err != nil {
		return nil, err
	}
	if sport == nil {
		return nil, apperr.NotFoundf("sport %s", req.SportID)
	}
	if sport.VenueID != venueID {
		return nil, apperr.Validationf("sport %s does not belong to venue %s", req.SportID, req.VenueID)
	}

	now := time.Now()
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    principal.ID,
		VenueID:   venueID,
		SportID:   sportID,
		TimeSlot:  timeSlot,
		Status:    entity.ReservationStatusPending,
		VenueName: venue.Name,
		SportName: sport.Name,
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		s.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("user_id", principal.ID.String()),
			zap.String("venue_id", req.VenueID),
			zap.String("sport_id", req.SportID))
		return nil, err
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("user_id", principal.ID.String()),
		zap.String("time_slot", string(timeSlot)))

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *reservationService) List(ctx context.Context, principal entity.Principal) ([]response.ReservationResponse, error) {
	if err := authorize(principal, entity.RoleStudent); err != nil {
		return nil, err
	}

	reservations, err := s.repo.Reservation.FindByUserID(ctx, principal.ID)
	if err != nil {
		s.log.Error("Failed to list reservations",
			zap.Error(err),
			zap.String("user_id", principal.ID.String()))
		return nil, err
	}

	responses := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		responses[i] = response.ReservationToResponse(reservation)
	}
	return responses, nil
}

func (s *reservationService) Delete(ctx context.Context, principal entity.Principal, reservationID string) error {
	if err := authorize(principal, entity.RoleStudent); err != nil {
		return err
	}

	id, err := uuid.Parse(reservationID)
	if err != nil {
		return apperr.Validationf("invalid reservation ID %s", reservationID)
	}

	deleted, err := s.repo.Reservation.DeletePending(ctx, id, principal.ID)
	if err != nil {
		s.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID))
		return err
	}
	if deleted {
		s.log.Info("Reservation deleted",
			zap.String("reservation_id", reservationID),
			zap.String("user_id", principal.ID.String()))
		return nil
	}

	// Nothing was removed: distinguish an unknown (or foreign) reservation
	// from one that is no longer pending.
	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if reservation == nil || reservation.UserID != principal.ID {
		return apperr.NotFoundf("reservation %s", reservationID)
	}
	return apperr.InvalidStatef("reservation %s is %s, only pending reservations can be deleted",
		reservationID, reservation.Status)
}
