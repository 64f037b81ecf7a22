package usecase

import (
	"car-rental-api/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Identity is what an access token proves about the caller.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, err
	}

	return Identity{UserID: claims.UserID, Username: claims.Username}, nil
}
