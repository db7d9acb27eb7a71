package usecase

import (
	"fleetrent/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware. Token issuance
// belongs to the external auth service; the core only verifies and unpacks
// the tenant scope.
type TokenValidator interface {
	ValidateToken(tokenString string) (*Identity, error)
}

type Identity struct {
	StaffID uuid.UUID
	OwnerID uuid.UUID
	Role    string
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	return &Identity{
		StaffID: claims.StaffID,
		OwnerID: claims.OwnerID,
		Role:    claims.Role,
	}, nil
}
