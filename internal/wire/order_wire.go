package wire

import (
	"sports-booking/internal/adaptor"
	"sports-booking/internal/data/repository"
	"sports-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/order/create", orderHandler.Submit)
		r.Get("/order/list", orderHandler.List)
		r.Post("/order/approve", orderHandler.Approve)
	})
}
