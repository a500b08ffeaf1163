package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func requireRoleContext(t *testing.T, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/subscriptions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		deliverycontext.SetAuthClaims(c, &service.Claims{UserID: uuid.New(), Role: role})
	}

	return c, rec
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(nil)
	restricted := m.RequireRole("BUSINESS", "STREET_VENDOR", "SERVICE_PROVIDER")

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	t.Run("matching role passes through", func(t *testing.T) {
		c, rec := requireRoleContext(t, "BUSINESS")

		err := restricted(next)(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("customer is rejected", func(t *testing.T) {
		c, rec := requireRoleContext(t, "CUSTOMER")

		err := restricted(next)(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing claims are rejected", func(t *testing.T) {
		c, rec := requireRoleContext(t, "")

		err := restricted(next)(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
