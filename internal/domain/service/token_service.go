package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID     uuid.UUID
	Role       string
	CityID     *uuid.UUID
	BusinessID *uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token carrying the user's
	// identity, role, city, and owned business, if any.
	GenerateToken(userID uuid.UUID, role string, cityID, businessID *uuid.UUID) (string, error)

	// GenerateRefreshToken creates a signed refresh token carrying only the
	// user's identity. It is signed with a separate secret so an access
	// token can never pass as one.
	GenerateRefreshToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the validity of an access token string.
	ValidateToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns the user it
	// was issued to.
	ValidateRefreshToken(tokenString string) (uuid.UUID, error)
}
