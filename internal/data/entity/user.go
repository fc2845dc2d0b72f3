package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// ParseRole normalizes role labels accepted at the boundary (including the
// localized ones legacy clients send) into the canonical enum. Applied
// exactly once on ingestion; everything past the boundary sees only the
// canonical values.
func ParseRole(s string) (Role, error) {
	switch s {
	case "student", "学生":
		return RoleStudent, nil
	case "teacher", "老师":
		return RoleTeacher, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

type User struct {
	Base
	Name         string `db:"name"`
	Phone        string `db:"phone"`
	PasswordHash string `db:"password"`
	Role         Role   `db:"role"`
}

// Principal is the authenticated actor performing an operation. Every
// service method takes it explicitly; nothing reads it from ambient state.
type Principal struct {
	ID   uuid.UUID
	Role Role
}
