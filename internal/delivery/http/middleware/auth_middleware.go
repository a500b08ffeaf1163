package middleware

import (
	"slices"
	"strings"

	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/delivery/http/response"
	"vitrina/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and stores the claims on the
// request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetAuthClaims(c, claims)

		return next(c)
	}
}

// GetUserID returns the authenticated user's ID from the request context.
// The second return is false when the request is unauthenticated.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	claims := deliverycontext.GetAuthClaims(c)
	if claims == nil {
		return uuid.Nil, false
	}

	return claims.UserID, true
}

// RequireRole is a middleware factory that restricts a route to the given
// roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := deliverycontext.GetAuthClaims(c)
			if claims == nil {
				return response.Forbidden(c, "ROLE_MISSING", "Permission denied: role information missing")
			}

			if !slices.Contains(roles, claims.Role) {
				return response.Forbidden(c, "ROLE_REQUIRED", "Permission denied: insufficient role")
			}

			return next(c)
		}
	}
}
