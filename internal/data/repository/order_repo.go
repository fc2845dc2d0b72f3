package repository

import (
	"context"
	"fmt"
	"time"

	"sports-booking/internal/data/entity"
	"sports-booking/pkg/apperr"
	"sports-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	// Submit creates the order from every pending reservation the student
	// has, inside one transaction: the pending rows are locked, snapshotted
	// into order_reservations and flipped to included. Returns
	// apperr.ErrEmptyOrder when the student has nothing pending; in that
	// case no order is created.
	Submit(ctx context.Context, order *entity.Order) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// ApproveIfSubmitted is a single conditional update keyed on the
	// submitted status, so two concurrent approvals produce exactly one
	// winner. Returns whether a row was transitioned.
	ApproveIfSubmitted(ctx context.Context, id uuid.UUID, status entity.OrderStatus, now time.Time) (bool, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Submit(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin submit transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the student's pending reservations so a concurrent delete or a
	// second submit cannot act on them mid-aggregation.
	rows, err := tx.Query(ctx, `
		SELECT r.id, v.name, s.name, r.time_slot
		FROM reservations r
		JOIN venues v ON v.id = r.venue_id
		JOIN sports s ON s.id = r.sport_id
		WHERE r.user_id = $1 AND r.status = $2
		FOR UPDATE OF r
	`, order.UserID, entity.ReservationStatusPending)
	if err != nil {
		return fmt.Errorf("lock pending reservations: %w", err)
	}

	var snapshots []*entity.OrderReservation
	for rows.Next() {
		snapshot := &entity.OrderReservation{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: order.CreatedAt,
			},
			OrderID: order.ID,
		}
		err := rows.Scan(
			&snapshot.ReservationID,
			&snapshot.VenueName,
			&snapshot.SportName,
			&snapshot.TimeSlot,
		)
		if err != nil {
			rows.Close()
			return fmt.Errorf("scan pending reservation: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read pending reservations: %w", err)
	}

	if len(snapshots) == 0 {
		return apperr.ErrEmptyOrder
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, user_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, order.ID, order.UserID, order.Status, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	reservationIDs := make([]uuid.UUID, len(snapshots))
	for i, snapshot := range snapshots {
		reservationIDs[i] = snapshot.ReservationID

		_, err = tx.Exec(ctx, `
			INSERT INTO order_reservations (id, order_id, reservation_id, venue_name, sport_name, time_slot, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, snapshot.ID, snapshot.OrderID, snapshot.ReservationID,
			snapshot.VenueName, snapshot.SportName, snapshot.TimeSlot, snapshot.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert order reservation snapshot: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE reservations SET status = $1, updated_at = $2 WHERE id = ANY($3)
	`, entity.ReservationStatusIncluded, order.UpdatedAt, reservationIDs)
	if err != nil {
		return fmt.Errorf("mark reservations included: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit submit transaction: %w", err)
	}

	order.Reservations = snapshots
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT o.id, o.user_id, o.status, o.created_at, o.updated_at, u.name
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.StudentName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	if err := r.attachSnapshots(ctx, []*entity.Order{&order}); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	query := `
		SELECT o.id, o.user_id, o.status, o.created_at, o.updated_at, u.name
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC
	`

	return r.findOrders(ctx, query, userID)
}

func (r *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	query := `
		SELECT o.id, o.user_id, o.status, o.created_at, o.updated_at, u.name
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
	`

	return r.findOrders(ctx, query)
}

func (r *orderRepository) ApproveIfSubmitted(ctx context.Context, id uuid.UUID, status entity.OrderStatus, now time.Time) (bool, error) {
	query := `
		UPDATE orders
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = $4
	`

	result, err := r.db.Exec(ctx, query, id, status, now, entity.OrderStatusSubmitted)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("update order %s status to %s: %w", id.String(), string(status), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *orderRepository) findOrders(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find orders", zap.Error(err))
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
			&order.StudentName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := r.attachSnapshots(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) attachSnapshots(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*entity.Order, len(orders))
	orderIDs := make([]uuid.UUID, len(orders))
	for i, order := range orders {
		byID[order.ID] = order
		orderIDs[i] = order.ID
	}

	query := `
		SELECT id, order_id, reservation_id, venue_name, sport_name, time_slot, created_at
		FROM order_reservations
		WHERE order_id = ANY($1)
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, orderIDs)
	if err != nil {
		r.log.Error("Failed to load order snapshots", zap.Error(err))
		return fmt.Errorf("load order snapshots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var snapshot entity.OrderReservation
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.OrderID,
			&snapshot.ReservationID,
			&snapshot.VenueName,
			&snapshot.SportName,
			&snapshot.TimeSlot,
			&snapshot.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("scan order snapshot row: %w", err)
		}

		if order, ok := byID[snapshot.OrderID]; ok {
			order.Reservations = append(order.Reservations, &snapshot)
		}
	}

	return rows.Err()
}
