package usecase

import (
	"sports-booking/internal/data/repository"
	"sports-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Venue       VenueService
	Comment     CommentService
	Reservation ReservationService
	Order       OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		User:        NewUserService(repo.User, log),
		Venue:       NewVenueService(repo, log),
		Comment:     NewCommentService(repo, log),
		Reservation: NewReservationService(repo, log),
		Order:       NewOrderService(repo, log),
	}
}
