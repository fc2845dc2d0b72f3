package repository

import (
	"context"
	"fmt"

	"sports-booking/internal/data/entity"
	"sports-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error)

	// DeletePending removes the reservation only if it is owned by userID
	// and still pending. The conditional delete is a single statement, so a
	// concurrent submit cannot race it into deleting an included row.
	DeletePending(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, user_id, venue_id, sport_id, time_slot, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.UserID,
		reservation.VenueID,
		reservation.SportID,
		reservation.TimeSlot,
		reservation.Status,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("user_id", reservation.UserID.String()),
			zap.String("time_slot", string(reservation.TimeSlot)),
		)
		return fmt.Errorf("create reservation: %w", err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `
		SELECT r.id, r.user_id, r.venue_id, r.sport_id, r.time_slot, r.status,
		       r.created_at, r.updated_at, v.name, s.name
		FROM reservations r
		JOIN venues v ON v.id = r.venue_id
		JOIN sports s ON s.id = r.sport_id
		WHERE r.id = $1
	`

	var reservation entity.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.VenueID,
		&reservation.SportID,
		&reservation.TimeSlot,
		&reservation.Status,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
		&reservation.VenueName,
		&reservation.SportName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return &reservation, nil
}

func (r *reservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	query := `
		SELECT r.id, r.user_id, r.venue_id, r.sport_id, r.time_slot, r.status,
		       r.created_at, r.updated_at, v.name, s.name
		FROM reservations r
		JOIN venues v ON v.id = r.venue_id
		JOIN sports s ON s.id = r.sport_id
		WHERE r.user_id = $1
		ORDER BY r.created_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find reservations by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reservations by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		var reservation entity.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.UserID,
			&reservation.VenueID,
			&reservation.SportID,
			&reservation.TimeSlot,
			&reservation.Status,
			&reservation.CreatedAt,
			&reservation.UpdatedAt,
			&reservation.VenueName,
			&reservation.SportName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &reservation)
	}

	return reservations, nil
}

func (r *reservationRepository) DeletePending(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM reservations
		WHERE id = $1 AND user_id = $2 AND status = $3
	`

	result, err := r.db.Exec(ctx, query, id, userID, entity.ReservationStatusPending)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return false, fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
