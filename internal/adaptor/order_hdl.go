package adaptor

import (
	"encoding/json"
	"net/http"

	"sports-booking/internal/dto/request"
	"sports-booking/internal/usecase"
	"sports-booking/pkg/utils"

	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Submit handles POST /order/create (student only). The order is built from
// every pending reservation the student has; no body is required.
func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	order, err := h.service.Submit(r.Context(), principal)
	if err != nil {
		handleServiceError(h.log, w, err, "submit order")
		return
	}

	utils.ResponseCreated(w, "success", order)
}

// List handles GET /order/list (protected). Students get their own orders,
// teachers get every order.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orders, err := h.service.List(r.Context(), principal)
	if err != nil {
		handleServiceError(h.log, w, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}

// Approve handles POST /order/approve (teacher only)
func (h *OrderHandler) Approve(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ApproveOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.Approve(r.Context(), principal, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "approve order")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}
