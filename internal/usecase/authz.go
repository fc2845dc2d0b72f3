package usecase

import (
	"sports-booking/internal/data/entity"
	"sports-booking/pkg/apperr"

	"github.com/google/uuid"
)

// authorize is the role gate wrapping every mutating operation. It is a pure
// decision on the explicitly passed principal and runs before any state is
// touched.
func authorize(principal entity.Principal, required entity.Role) error {
	if principal.Role != required {
		return apperr.Forbiddenf("%s role required", required)
	}
	return nil
}

// authorizeOwner additionally checks that the principal owns the resource.
func authorizeOwner(principal entity.Principal, required entity.Role, ownerID uuid.UUID) error {
	if err := authorize(principal, required); err != nil {
		return err
	}
	if principal.ID != ownerID {
		return apperr.Forbiddenf("not the owner of this resource")
	}
	return nil
}
