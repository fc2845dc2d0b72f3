package repository

import (
	"sports-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Venue       VenueRepository
	Sport       SportRepository
	Comment     CommentRepository
	Reservation ReservationRepository
	Order       OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Venue:       NewVenueRepository(db, log),
		Sport:       NewSportRepository(db, log),
		Comment:     NewCommentRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Order:       NewOrderRepository(db, log),
	}
}
