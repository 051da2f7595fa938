package usecase

import (
	"stayhub/internal/domain/user"
	"stayhub/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is the narrow surface the auth middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(svc *jwt.Service) TokenValidator {
	return tokenValidator{jwt: svc}
}

func (v tokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwt.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, claims.Role, nil
}
