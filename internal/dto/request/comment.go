package request

type CreateCommentRequest struct {
	VenueID string `json:"venueId" validate:"required,uuid"`
	Content string `json:"content" validate:"required,max=2000"`
}
