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

type SportRepository interface {
	Create(ctx context.Context, sport *entity.Sport) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sport, error)
	FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.Sport, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type sportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSportRepository(db database.PgxIface, log *zap.Logger) SportRepository {
	return &sportRepository{
		db:  db,
		log: log.With(zap.String("repository", "sport")),
	}
}

func (r *sportRepository) Create(ctx context.Context, sport *entity.Sport) error {
	query := `
		INSERT INTO sports (id, venue_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		sport.ID,
		sport.VenueID,
		sport.Name,
		sport.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create sport",
			zap.Error(err),
			zap.String("venue_id", sport.VenueID.String()),
			zap.String("name", sport.Name),
		)
		return fmt.Errorf("create sport %s: %w", sport.Name, err)
	}

	return nil
}

func (r *sportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sport, error) {
	query := `
		SELECT id, venue_id, name, created_at
		FROM sports
		WHERE id = $1
	`

	var sport entity.Sport
	err := r.db.QueryRow(ctx, query, id).Scan(
		&sport.ID,
		&sport.VenueID,
		&sport.Name,
		&sport.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find sport by ID",
			zap.Error(err),
			zap.String("sport_id", id.String()),
		)
		return nil, fmt.Errorf("find sport by ID %s: %w", id.String(), err)
	}

	return &sport, nil
}

func (r *sportRepository) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.Sport, error) {
	query := `
		SELECT id, venue_id, name, created_at
		FROM sports
		WHERE venue_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, venueID)
	if err != nil {
		r.log.Error("Failed to find sports by venue ID",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
		)
		return nil, fmt.Errorf("find sports by venue ID %s: %w", venueID.String(), err)
	}
	defer rows.Close()

	var sports []*entity.Sport
	for rows.Next() {
		var sport entity.Sport
		err := rows.Scan(
			&sport.ID,
			&sport.VenueID,
			&sport.Name,
			&sport.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan sport row: %w", err)
		}
		sports = append(sports, &sport)
	}

	return sports, nil
}

func (r *sportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM sports WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete sport",
			zap.Error(err),
			zap.String("sport_id", id.String()),
		)
		return fmt.Errorf("delete sport %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("sport %s not found", id.String())
	}

	return nil
}
