package usecase

import (
	"skill-match/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as read from the access token.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsEmployer() bool {
	return a.Role == user.RoleEmployer
}
