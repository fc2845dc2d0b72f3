package wire

import (
	"sports-booking/internal/adaptor"
	"sports-booking/internal/data/repository"
	"sports-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/user/register", authHandler.Register)
	r.Post("/user/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/user/info", userHandler.Info)
		r.Put("/personal/update", userHandler.UpdateProfile)
		r.Post("/personal/logout", authHandler.Logout)
	})
}
