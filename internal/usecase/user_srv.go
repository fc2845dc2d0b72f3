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

	"go.uber.org/zap"
)

type UserService interface {
	Info(ctx context.Context, principal entity.Principal) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, principal entity.Principal, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type userService struct {
	repo repository.UserRepository
	log  *zap.Logger
}

func NewUserService(repo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) Info(ctx context.Context, principal entity.Principal) (*response.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, principal.ID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", principal.ID.String()))
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("user %s", principal.ID.String())
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, principal entity.Principal, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, apperr.Validationf("%s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.FindByID(ctx, principal.ID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", principal.ID.String()))
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("user %s", principal.ID.String())
	}

	if req.Phone != user.Phone {
		existing, err := s.repo.FindByPhone(ctx, req.Phone)
		if err != nil {
			s.log.Error("Failed to check phone", zap.Error(err))
			return nil, err
		}
		if existing != nil {
			return nil, apperr.Validationf("phone %s already registered", req.Phone)
		}
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	s.log.Info("User profile updated", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}
