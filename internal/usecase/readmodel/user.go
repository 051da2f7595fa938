package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserRM is the authenticated-user projection shared by the
// auth usecase and the handler layer.
type AuthorizedUserRM struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
