package usecase

import (
	"context"
	"errors"
	"testing"

	"sports-booking/internal/data/entity"
	"sports-booking/internal/dto/request"
	"sports-booking/pkg/apperr"

	"github.com/google/uuid"
)

func TestGetVenueWithSports(t *testing.T) {
	repo, venueID, _, _ := newTestRepo()
	service := NewVenueService(repo, testLogger())

	venue, err := service.GetVenue(context.Background(), venueID.String())
	if err != nil {
		t.Fatalf("get venue: %v", err)
	}
	if venue.Name != "Campus Gym" {
		t.Fatalf("expected Campus Gym, got %q", venue.Name)
	}
	if len(venue.Sports) != 2 {
		t.Fatalf("expected 2 sports, got %d", len(venue.Sports))
	}
}

func TestGetVenueUnknown(t *testing.T) {
	repo, _, _, _ := newTestRepo()
	service := NewVenueService(repo, testLogger())

	_, err := service.GetVenue(context.Background(), uuid.NewString())
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	_, err = service.GetVenue(context.Background(), "not-a-uuid")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateVenueTeacherOnly(t *testing.T) {
	repo, _, _, _ := newTestRepo()
	service := NewVenueService(repo, testLogger())
	teacher := entity.Principal{ID: uuid.New(), Role: entity.RoleTeacher}
	student := entity.Principal{ID: uuid.New(), Role: entity.RoleStudent}

	req := &request.CreateVenueRequest{
		Name:    "East Field",
		Address: "12 University Road",
		Phone:   "010-555-0101",
	}

	if _, err := service.CreateVenue(context.Background(), student, req); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected forbidden for student, got %v", err)
	}

	venue, err := service.CreateVenue(context.Background(), teacher, req)
	if err != nil {
		t.Fatalf("create venue: %v", err)
	}
	if venue.Name != "East Field" {
		t.Fatalf("expected East Field, got %q", venue.Name)
	}

	venues, err := service.ListVenues(context.Background())
	if err != nil {
		t.Fatalf("list venues: %v", err)
	}
	if len(venues) != 2 {
		t.Fatalf("expected 2 venues, got %d", len(venues))
	}
}

func TestUpdateVenue(t *testing.T) {
	repo, venueID, _, _ := newTestRepo()
	service := NewVenueService(repo, testLogger())
	teacher := entity.Principal{ID: uuid.New(), Role: entity.RoleTeacher}

	updated, err := service.UpdateVenue(context.Background(), teacher, venueID.String(), &request.UpdateVenueRequest{
		Name:    "Main Gym",
		Address: "1 Campus Loop",
		Phone:   "010-555-0102",
	})
	if err != nil {
		t.Fatalf("update venue: %v", err)
	}
	if updated.Name != "Main Gym" {
		t.Fatalf("expected Main Gym, got %q", updated.Name)
	}
	if len(updated.Sports) != 2 {
		t.Fatalf("expected sports preserved, got %d", len(updated.Sports))
	}
}

func TestDeleteVenue(t *testing.T) {
	repo, venueID, _, _ := newTestRepo()
	service := NewVenueService(repo, testLogger())
	teacher := entity.Principal{ID: uuid.New(), Role: entity.RoleTeacher}

	if err := service.DeleteVenue(context.Background(), teacher, venueID.String()); err != nil {
		t.Fatalf("delete venue: %v", err)
	}

	err := service.DeleteVenue(context.Background(), teacher, venueID.String())
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestCreateSport(t *testing.T) {
	repo, venueID, _, _ := newTestRepo()
	service := NewVenueService(repo, testLogger())
	teacher := entity.Principal{ID: uuid.New(), Role: entity.RoleTeacher}

	sport, err := service.CreateSport(context.Background(), teacher, &request.CreateSportRequest{
		VenueID: venueID.String(),
		Name:    "羽毛球",
	})
	if err != nil {
		t.Fatalf("create sport: %v", err)
	}

	sports, err := service.ListSports(context.Background(), venueID.String())
	if err != nil {
		t.Fatalf("list sports: %v", err)
	}
	if len(sports) != 3 {
		t.Fatalf("expected 3 sports, got %d", len(sports))
	}

	student := entity.Principal{ID: uuid.New(), Role: entity.RoleStudent}
	if err := service.DeleteSport(context.Background(), student, sport.ID); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected forbidden for student, got %v", err)
	}
	if err := service.DeleteSport(context.Background(), teacher, sport.ID); err != nil {
		t.Fatalf("delete sport: %v", err)
	}
}

func TestCreateSportUnknownVenue(t *testing.T) {
	repo, _, _, _ := newTestRepo()
	service := NewVenueService(repo, testLogger())
	teacher := entity.Principal{ID: uuid.New(), Role: entity.RoleTeacher}

	_, err := service.CreateSport(context.Background(), teacher, &request.CreateSportRequest{
		VenueID: uuid.NewString(),
		Name:    "羽毛球",
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
