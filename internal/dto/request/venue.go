package request

type CreateVenueRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Address     string `json:"address" validate:"required,max=255"`
	Phone       string `json:"phone" validate:"required,max=20"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateVenueRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Address     string `json:"address" validate:"required,max=255"`
	Phone       string `json:"phone" validate:"required,max=20"`
	Description string `json:"description" validate:"max=2000"`
}

type CreateSportRequest struct {
	VenueID string `json:"venueId" validate:"required,uuid"`
	Name    string `json:"name" validate:"required,max=100"`
}
