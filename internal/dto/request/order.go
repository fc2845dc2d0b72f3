package request

type ApproveOrderRequest struct {
	OrderID string `json:"oid" validate:"required,uuid"`
	Approve bool   `json:"approve"`
}
