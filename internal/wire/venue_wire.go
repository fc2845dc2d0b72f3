package wire

import (
	"sports-booking/internal/adaptor"
	"sports-booking/internal/data/repository"
	"sports-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVenue(
	r chi.Router,
	venueHandler *adaptor.VenueHandler,
	commentHandler *adaptor.CommentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (any authenticated role) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/venue/list", venueHandler.ListVenues)
		r.Get("/venue/{vid}", venueHandler.GetVenue)
		r.Get("/sport/list", venueHandler.ListSports)
		r.Get("/activity/search", venueHandler.Search)

		r.Get("/comment/list", commentHandler.List)
		r.Post("/comment/create", commentHandler.Create)
	})

	// ==================== TEACHER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireTeacher(log))

		r.Post("/venue/create", venueHandler.CreateVenue)
		r.Put("/venue/update/{vid}", venueHandler.UpdateVenue)
		r.Delete("/venue/delete/{vid}", venueHandler.DeleteVenue)

		r.Post("/sport/create", venueHandler.CreateSport)
		r.Delete("/sport/delete", venueHandler.DeleteSport)
	})
}
