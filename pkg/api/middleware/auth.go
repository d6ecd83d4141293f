package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prompthub/prompthub/pkg/identity"
	"github.com/prompthub/prompthub/pkg/models"
)

// Context keys set by RequireIdentity.
const (
	ContextSubject = "identity_subject"
	ContextEmail   = "identity_email"
)

// RequireIdentity creates a middleware that verifies the Authorization bearer
// credential against the external identity provider and stores the verified
// subject and email in the request context. The verifier's output is trusted
// unconditionally downstream.
func RequireIdentity(verifier identity.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "missing_token",
					Message: "Authorization header is required",
				})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token_format",
					Message: "Authorization header must be 'Bearer {token}'",
				})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			id, err := verifier.Verify(ctx, parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token",
					Message: "Bearer token could not be verified",
				})
			}

			c.Set(ContextSubject, id.Subject)
			c.Set(ContextEmail, id.Email)

			return next(c)
		}
	}
}
