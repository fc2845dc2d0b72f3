package adaptor

import (
	"errors"
	"net/http"

	"sports-booking/internal/usecase"
	"sports-booking/pkg/apperr"
	"sports-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Venue       *VenueHandler
	Comment     *CommentHandler
	Reservation *ReservationHandler
	Order       *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Venue:       NewVenueHandler(service.Venue, log),
		Comment:     NewCommentHandler(service.Comment, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		Order:       NewOrderHandler(service.Order, log),
	}
}

// handleServiceError maps the shared error kinds onto HTTP statuses. Every
// handler funnels service failures through here.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, apperr.ErrForbidden):
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, apperr.ErrNotFound):
		log.Warn(operation+" not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, apperr.ErrInvalidState), errors.Is(err, apperr.ErrEmptyOrder):
		log.Warn(operation+" conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
