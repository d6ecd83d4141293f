package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prompthub/prompthub/pkg/identity"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, subject, email string) string {
	claims := identity.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func runMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	verifier := identity.NewJWTVerifier(testSecret)
	handler := RequireIdentity(verifier)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c
}

func TestRequireIdentity_ValidToken(t *testing.T) {
	token := signTestToken(t, "auth0|user1", "user1@example.com")
	rec, c := runMiddleware(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "auth0|user1", c.Get(ContextSubject))
	assert.Equal(t, "user1@example.com", c.Get(ContextEmail))
}

func TestRequireIdentity_MissingHeader(t *testing.T) {
	rec, _ := runMiddleware(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing_token")
}

func TestRequireIdentity_MalformedHeader(t *testing.T) {
	rec, _ := runMiddleware(t, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_token_format")
}

func TestRequireIdentity_BadToken(t *testing.T) {
	rec, _ := runMiddleware(t, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_token")
}
