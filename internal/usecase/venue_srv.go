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

type VenueService interface {
	// Catalog reads, open to any authenticated user.
	GetVenue(ctx context.Context, venueID string) (*response.VenueResponse, error)
	ListVenues(ctx context.Context) ([]response.VenueResponse, error)
	ListSports(ctx context.Context, venueID string) ([]response.SportResponse, error)
	Search(ctx context.Context, keyword string) ([]response.VenueResponse, error)

	// Catalog management, teachers only.
	CreateVenue(ctx context.Context, principal entity.Principal, req *request.CreateVenueRequest) (*response.VenueResponse, error)
	UpdateVenue(ctx context.Context, principal entity.Principal, venueID string, req *request.UpdateVenueRequest) (*response.VenueResponse, error)
	DeleteVenue(ctx context.Context, principal entity.Principal, venueID string) error
	CreateSport(ctx context.Context, principal entity.Principal, req *request.CreateSportRequest) (*response.SportResponse, error)
	DeleteSport(ctx context.Context, principal entity.Principal, sportID string) error
}

type venueService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVenueService(repo *repository.Repository, log *zap.Logger) VenueService {
	return &venueService{
		repo: repo,
		log:  log.With(zap.String("service", "venue")),
	}
}

func (s *venueService) GetVenue(ctx context.Context, venueID string) (*response.VenueResponse, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, apperr.Validationf("invalid venue ID %s", venueID)
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, apperr.NotFoundf("venue %s", venueID)
	}

	sports, err := s.repo.Sport.FindByVenueID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.VenueToResponse(venue, sports)
	return &resp, nil
}

func (s *venueService) ListVenues(ctx context.Context) ([]response.VenueResponse, error) {
	venues, err := s.repo.Venue.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return s.buildVenueResponses(ctx, venues)
}

func (s *venueService) ListSports(ctx context.Context, venueID string) ([]response.SportResponse, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, apperr.Validationf("invalid venue ID %s", venueID)
	}

	sports, err := s.repo.Sport.FindByVenueID(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]response.SportResponse, len(sports))
	for i, sport := range sports {
		responses[i] = response.SportToResponse(sport)
	}
	return responses, nil
}

func (s *venueService) Search(ctx context.Context, keyword string) ([]response.VenueResponse, error) {
	venues, err := s.repo.Venue.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}

	return s.buildVenueResponses(ctx, venues)
}

func (s *venueService) CreateVenue(ctx context.Context, principal entity.Principal, req *request.CreateVenueRequest) (*response.VenueResponse, error) {
	if err := authorize(principal, entity.RoleTeacher); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create venue validation failed", zap.Any("errors", errs))
		return nil, apperr.Validationf("%s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	venue := &entity.Venue{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Description: req.Description,
	}

	if err := s.repo.Venue.Create(ctx, venue); err != nil {
		s.log.Error("Failed to create venue", zap.Error(err), zap.String("name", req.Name))
		return nil, err
	}

	s.log.Info("Venue created",
		zap.String("venue_id", venue.ID.String()),
		zap.String("name", venue.Name))

	resp := response.VenueToResponse(venue, nil)
	return &resp, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, principal entity.Principal, venueID string, req *request.UpdateVenueRequest) (*response.VenueResponse, error) {
	if err := authorize(principal, entity.RoleTeacher); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update venue validation failed", zap.Any("errors", errs))
		return nil, apperr.Validationf("%s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, apperr.Validationf("invalid venue ID %s", venueID)
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, apperr.NotFoundf("venue %s", venueID)
	}

	venue.Name = req.Name
	venue.Address = req.Address
	venue.Phone = req.Phone
	venue.Description = req.Description
	venue.UpdatedAt = time.Now()

	if err := s.repo.Venue.Update(ctx, venue); err != nil {
		s.log.Error("Failed to update venue", zap.Error(err), zap.String("venue_id", venueID))
		return nil, err
	}

	s.log.Info("Venue updated", zap.String("venue_id", venueID))

	sports, err := s.repo.Sport.FindByVenueID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.VenueToResponse(venue, sports)
	return &resp, nil
}

func (s *venueService) DeleteVenue(ctx context.Context, principal entity.Principal, venueID string) error {
	if err := authorize(principal, entity.RoleTeacher); err != nil {
		return err
	}

	id, err := uuid.Parse(venueID)
	if err != nil {
		return apperr.Validationf("invalid venue ID %s", venueID)
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if venue == nil {
		return apperr.NotFoundf("venue %s", venueID)
	}

	if err := s.repo.Venue.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete venue", zap.Error(err), zap.String("venue_id", venueID))
		return err
	}

	s.log.Info("Venue deleted", zap.String("venue_id", venueID))
	return nil
}

func (s *venueService) CreateSport(ctx context.Context, principal entity.Principal, req *request.CreateSportRequest) (*response.SportResponse, error) {
	if err := authorize(principal, entity.RoleTeacher); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create sport validation failed", zap.Any("errors", errs))
		return nil, apperr.Validationf("%s", utils.FormatValidationErrors(errs))
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, apperr.Validationf("invalid venue ID %s", req.VenueID)
	}

	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, apperr.NotFoundf("venue %s", req.VenueID)
	}

	sport := &entity.Sport{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		VenueID: venueID,
		Name:    req.Name,
	}

	if err := s.repo.Sport.Create(ctx, sport); err != nil {
		s.log.Error("Failed to create sport",
			zap.Error(err),
			zap.String("venue_id", req.VenueID),
			zap.String("name", req.Name))
		return nil, err
	}

	s.log.Info("Sport created",
		zap.String("sport_id", sport.ID.String()),
		zap.String("venue_id", req.VenueID),
		zap.String("name", sport.Name))

	resp := response.SportToResponse(sport)
	return &resp, nil
}

func (s *venueService) DeleteSport(ctx context.Context, principal entity.Principal, sportID string) error {
	if err := authorize(principal, entity.RoleTeacher); err != nil {
		return err
	}

	id, err := uuid.Parse(sportID)
	if err != nil {
		return apperr.Validationf("invalid sport ID %s", sportID)
	}

	sport, err := s.repo.Sport.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if sport == nil {
		return apperr.NotFoundf("sport %s", sportID)
	}

	if err := s.repo.Sport.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete sport", zap.Error(err), zap.String("sport_id", sportID))
		return err
	}

	s.log.Info("Sport deleted", zap.String("sport_id", sportID))
	return nil
}

func (s *venueService) buildVenueResponses(ctx context.Context, venues []*entity.Venue) ([]response.VenueResponse, error) {
	responses := make([]response.VenueResponse, len(venues))
	for i, venue := range venues {
		sports, err := s.repo.Sport.FindByVenueID(ctx, venue.ID)
		if err != nil {
			return nil, err
		}
		responses[i] = response.VenueToResponse(venue, sports)
	}
	return responses, nil
}
