package context

import (
	"github.com/labstack/echo/v4"

	"vitrina/internal/domain/service"
)

// KeyAuthClaims is the key for storing the authenticated token claims in
// echo.Context. Set by the auth middleware after token validation.
const KeyAuthClaims ContextKey = "auth_claims"

// SetAuthClaims stores the validated token claims in echo.Context.
func SetAuthClaims(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyAuthClaims), claims)
}

// GetAuthClaims extracts the validated token claims from echo.Context.
// Returns nil when the request is unauthenticated.
func GetAuthClaims(c echo.Context) *service.Claims {
	if claims, ok := c.Get(string(KeyAuthClaims)).(*service.Claims); ok {
		return claims
	}

	return nil
}
