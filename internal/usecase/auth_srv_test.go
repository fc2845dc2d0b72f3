package usecase

import (
	"context"
	"errors"
	"testing"

	"sports-booking/internal/data/entity"
	"sports-booking/internal/dto/request"
	"sports-booking/pkg/apperr"
)

func TestRegisterAndLogin(t *testing.T) {
	repo, _, _, _ := newTestRepo()
	service := NewAuthService(repo, testConfig(), testLogger())

	registered, err := service.Register(context.Background(), &request.RegisterRequest{
		Name:     "Alice",
		Phone:    "13800138000",
		Password: "secret123",
		Role:     "student",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.User.Role != string(entity.RoleStudent) {
		t.Fatalf("expected student role, got %q", registered.User.Role)
	}
	if registered.Token == "" {
		t.Fatal("expected session token on register")
	}

	logged, err := service.Login(context.Background(), &request.LoginRequest{
		Phone:    "13800138000",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.User.ID != registered.User.ID {
		t.Fatalf("expected same user, got %s and %s", logged.User.ID, registered.User.ID)
	}
	if logged.Token == registered.Token {
		t.Fatal("expected a fresh session token per login")
	}
}

func TestRegisterLocalizedRole(t *testing.T) {
	repo, _, _, _ := newTestRepo()
	service := NewAuthService(repo, testConfig(), testLogger())

	registered, err := service.Register(context.Background(), &request.RegisterRequest{
		Name:     "王老师",
		Phone:    "13900139000",
		Password: "secret123",
		Role:     "老师",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.User.Role != string(entity.RoleTeacher) {
		t.Fatalf("expected normalized teacher role, got %q", registered.User.Role)
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	repo, _, _, _ := newTestRepo()
	service := NewAuthService(repo, testConfig(), testLogger())

	req := &request.RegisterRequest{
		Name:     "Alice",
		Phone:    "13800138000",
		Password: "secret123",
		Role:     "student",
	}
	if _, err := service.Register(context.Background(), req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := service.Register(context.Background(), req)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error for duplicate phone, got %v", err)
	}
}

func TestRegisterUnknownRole(t *testing.T) {
	repo, _, _, _ := newTestRepo()
	service := NewAuthService(repo, testConfig(), testLogger())

	_, err := service.Register(context.Background(), &request.RegisterRequest{
		Name:     "Alice",
		Phone:    "13800138000",
		Password: "secret123",
		Role:     "admin",
	})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo, _, _, _ := newTestRepo()
	service := NewAuthService(repo, testConfig(), testLogger())

	if _, err := service.Register(context.Background(), &request.RegisterRequest{
		Name:     "Alice",
		Phone:    "13800138000",
		Password: "secret123",
		Role:     "student",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := service.Login(context.Background(), &request.LoginRequest{
		Phone:    "13800138000",
		Password: "wrong-password",
	})
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected forbidden for wrong password, got %v", err)
	}

	_, err = service.Login(context.Background(), &request.LoginRequest{
		Phone:    "13700000000",
		Password: "secret123",
	})
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected forbidden for unknown phone, got %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	repo, _, _, _ := newTestRepo()
	service := NewAuthService(repo, testConfig(), testLogger())

	registered, err := service.Register(context.Background(), &request.RegisterRequest{
		Name:     "Alice",
		Phone:    "13800138000",
		Password: "secret123",
		Role:     "student",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := service.Logout(context.Background(), registered.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}

	session, err := repo.Session.FindValidSession(context.Background(), registered.Token)
	if err != nil {
		t.Fatalf("find session: %v", err)
	}
	if session != nil {
		t.Fatal("expected session to be revoked")
	}
}
