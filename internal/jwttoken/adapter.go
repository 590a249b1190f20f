package jwttoken

import (
	"crewdock/internal/platform/middleware"
	id "crewdock/pkg/domain"
	dErrors "crewdock/pkg/domain-errors"
)

// MiddlewareAdapter adapts the JWT service to the middleware.TokenValidator
// interface, converting raw claim strings into typed identifiers.
type MiddlewareAdapter struct {
	service *Service
}

// NewMiddlewareAdapter creates an adapter around the JWT service.
func NewMiddlewareAdapter(service *Service) *MiddlewareAdapter {
	return &MiddlewareAdapter{service: service}
}

func (a *MiddlewareAdapter) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	userID, err := id.ParseUserID(claims.UserID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid user in token")
	}
	role := id.Role(claims.Role)
	if !role.IsValid() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid role in token")
	}

	return &middleware.TokenClaims{
		UserID: userID,
		Role:   role,
	}, nil
}
