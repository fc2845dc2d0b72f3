package response

import (
	"time"

	"sports-booking/internal/data/entity"
)

type CommentResponse struct {
	ID        string    `json:"cid"`
	VenueID   string    `json:"venueId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func CommentToResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID.String(),
		VenueID:   comment.VenueID.String(),
		UserID:    comment.UserID.String(),
		UserName:  comment.UserName,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
