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

type CommentService interface {
	Create(ctx context.Context, principal entity.Principal, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	ListByVenue(ctx context.Context, venueID string) ([]response.CommentResponse, error)
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) Create(ctx context.Context, principal entity.Principal, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create comment validation failed", zap.Any("errors", errs))
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

	user, err := s.repo.User.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("user %s", principal.ID.String())
	}

	comment := &entity.Comment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		VenueID:  venueID,
		UserID:   principal.ID,
		Content:  req.Content,
		UserName: user.Name,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("venue_id", req.VenueID),
			zap.String("user_id", principal.ID.String()))
		return nil, err
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("venue_id", req.VenueID))

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) ListByVenue(ctx context.Context, venueID string) ([]response.CommentResponse, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, apperr.Validationf("invalid venue ID %s", venueID)
	}

	comments, err := s.repo.Comment.FindByVenueID(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]response.CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = response.CommentToResponse(comment)
	}
	return responses, nil
}
