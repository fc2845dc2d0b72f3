package usecase

import (
	"context"
	"time"

	"sports-booking/internal/data/entity"
	"sports-booking/internal/data/repository"
	"sports-booking/internal/dto/request"
	"sports-booking/internal/dto/response"
	"sports-booking/pkg/apperr"
	"sports-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	// Submit bundles every pending reservation the student currently has
	// into one order awaiting teacher approval.
	Submit(ctx context.Context, principal entity.Principal) (*response.OrderResponse, error)

	// List returns the caller's own orders for students and every order in
	// the system for teachers.
	List(ctx context.Context, principal entity.Principal) ([]response.OrderResponse, error)

	// Approve moves a submitted order to approved or rejected. Terminal
	// orders cannot be approved again; a repeat call is an error, not a
	// no-op. The underlying reservations keep their included status either
	// way.
	Approve(ctx context.Context, principal entity.Principal, req *request.ApproveOrderRequest) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) Submit(ctx context.Context, principal entity.Principal) (*response.OrderResponse, error) {
	if err := authorize(principal, entity.RoleStudent); err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: principal.ID,
		Status: entity.OrderStatusSubmitted,
	}

	if err := s.repo.Order.Submit(ctx, order); err != nil {
		if err == apperr.ErrEmptyOrder {
			s.log.Warn("Submit with no pending reservations",
				zap.String("user_id", principal.ID.String()))
			return nil, err
		}
		s.log.Error("Failed to submit order",
			zap.Error(err),
			zap.String("user_id", principal.ID.String()))
		return nil, err
	}

	s.log.Info("Order submitted",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", principal.ID.String()),
		zap.Int("reservation_count", len(order.Reservations)))

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) List(ctx context.Context, principal entity.Principal) ([]response.OrderResponse, error) {
	var orders []*entity.Order
	var err error

	if principal.Role == entity.RoleTeacher {
		orders, err = s.repo.Order.FindAll(ctx)
	} else {
		orders, err = s.repo.Order.FindByUserID(ctx, principal.ID)
	}
	if err != nil {
		s.log.Error("Failed to list orders",
			zap.Error(err),
			zap.String("user_id", principal.ID.String()),
			zap.String("role", string(principal.Role)))
		return nil, err
	}

	responses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = response.OrderToResponse(order)
	}
	return responses, nil
}

func (s *orderService) Approve(ctx context.Context, principal entity.Principal, req *request.ApproveOrderRequest) (*response.OrderResponse, error) {
	if err := authorize(principal, entity.RoleTeacher); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Approve order validation failed", zap.Any("errors", errs))
		return nil, apperr.Validationf("%s", utils.FormatValidationErrors(errs))
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, apperr.Validationf("invalid order ID %s", req.OrderID)
	}

	status := entity.DecisionStatus(req.Approve)

	transitioned, err := s.repo.Order.ApproveIfSubmitted(ctx, orderID, status, time.Now())
	if err != nil {
		s.log.Error("Failed to approve order",
			zap.Error(err),
			zap.String("order_id", req.OrderID))
		return nil, err
	}

	if !transitioned {
		// Nothing changed: either the order does not exist or it already
		// reached a terminal state.
		order, err := s.repo.Order.FindByID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, apperr.NotFoundf("order %s", req.OrderID)
		}
		return nil, apperr.InvalidStatef("order %s is %s, only submitted orders can be approved",
			req.OrderID, order.Status)
	}

	s.log.Info("Order approved",
		zap.String("order_id", req.OrderID),
		zap.String("teacher_id", principal.ID.String()),
		zap.String("status", string(status)))

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFoundf("order %s", req.OrderID)
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}
