package response

import (
	"time"

	"sports-booking/internal/data/entity"
)

type SportResponse struct {
	ID   string `json:"sid"`
	Name string `json:"name"`
}

type VenueResponse struct {
	ID          string          `json:"vid"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	Description string          `json:"description"`
	Sports      []SportResponse `json:"sports"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func SportToResponse(sport *entity.Sport) SportResponse {
	return SportResponse{
		ID:   sport.ID.String(),
		Name: sport.Name,
	}
}

func VenueToResponse(venue *entity.Venue, sports []*entity.Sport) VenueResponse {
	sportResponses := make([]SportResponse, len(sports))
	for i, sport := range sports {
		sportResponses[i] = SportToResponse(sport)
	}

	return VenueResponse{
		ID:          venue.ID.String(),
		Name:        venue.Name,
		Address:     venue.Address,
		Phone:       venue.Phone,
		Description: venue.Description,
		Sports:      sportResponses,
		CreatedAt:   venue.CreatedAt,
	}
}
