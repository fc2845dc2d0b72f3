package wire

import (
	"sports-booking/internal/adaptor"
	"sports-booking/internal/data/repository"
	"sports-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/reservation/create", reservationHandler.Create)
		r.Get("/reservation/list", reservationHandler.List)
		r.Delete("/reservation/delete", reservationHandler.Delete)
	})
}
