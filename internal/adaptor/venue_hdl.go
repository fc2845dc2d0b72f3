package adaptor

import (
	"encoding/json"
	"net/http"

	"sports-booking/internal/dto/request"
	"sports-booking/internal/usecase"
	"sports-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VenueHandler struct {
	service usecase.VenueService
	log     *zap.Logger
}

func NewVenueHandler(service usecase.VenueService, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log.With(zap.String("handler", "venue")),
	}
}

// GetVenue handles GET /venue/{vid} (protected)
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "vid")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	venue, err := h.service.GetVenue(r.Context(), venueID)
	if err != nil {
		handleServiceError(h.log, w, err, "get venue")
		return
	}

	utils.ResponseSuccess(w, "success", venue)
}

// ListVenues handles GET /venue/list (protected)
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := h.service.ListVenues(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list venues")
		return
	}

	utils.ResponseSuccess(w, "success", venues)
}

// ListSports handles GET /sport/list?venueId= (protected)
func (h *VenueHandler) ListSports(w http.ResponseWriter, r *http.Request) {
	venueID := r.URL.Query().Get("venueId")
	if venueID == "" {
		utils.ResponseBadRequest(w, "venueId is required", nil)
		return
	}

	sports, err := h.service.ListSports(r.Context(), venueID)
	if err != nil {
		handleServiceError(h.log, w, err, "list sports")
		return
	}

	utils.ResponseSuccess(w, "success", sports)
}

// Search handles GET /activity/search?keyword= (protected)
func (h *VenueHandler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")

	venues, err := h.service.Search(r.Context(), keyword)
	if err != nil {
		handleServiceError(h.log, w, err, "search venues")
		return
	}

	utils.ResponseSuccess(w, "success", venues)
}

// ==================== TEACHER METHODS ====================

// CreateVenue handles POST /venue/create (teacher only)
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	venue, err := h.service.CreateVenue(r.Context(), principal, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create venue")
		return
	}

	utils.ResponseCreated(w, "success", venue)
}

// UpdateVenue handles PUT /venue/update/{vid} (teacher only)
func (h *VenueHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	venueID := chi.URLParam(r, "vid")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	var req request.UpdateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	venue, err := h.service.UpdateVenue(r.Context(), principal, venueID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update venue")
		return
	}

	utils.ResponseSuccess(w, "success", venue)
}

// DeleteVenue handles DELETE /venue/delete/{vid} (teacher only)
func (h *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	venueID := chi.URLParam(r, "vid")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	if err := h.service.DeleteVenue(r.Context(), principal, venueID); err != nil {
		handleServiceError(h.log, w, err, "delete venue")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateSport handles POST /sport/create (teacher only)
func (h *VenueHandler) CreateSport(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateSportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	sport, err := h.service.CreateSport(r.Context(), principal, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create sport")
		return
	}

	utils.ResponseCreated(w, "success", sport)
}

// DeleteSport handles DELETE /sport/delete?sid= (teacher only)
func (h *VenueHandler) DeleteSport(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	sportID := r.URL.Query().Get("sid")
	if sportID == "" {
		utils.ResponseBadRequest(w, "sid is required", nil)
		return
	}

	if err := h.service.DeleteSport(r.Context(), principal, sportID); err != nil {
		handleServiceError(h.log, w, err, "delete sport")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
