package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a bearer credential fails verification.
var ErrInvalidToken = errors.New("invalid identity token")

// Identity is the verified subject returned by the external identity provider.
// Its contents are trusted unconditionally downstream.
type Identity struct {
	Subject string
	Email   string
}

// Verifier verifies a bearer credential and returns the identity it carries.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// Claims represents the claims the identity provider puts in its tokens
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies HS256 tokens issued by the identity provider
// against a shared secret.
type JWTVerifier struct {
	secret string
}

// NewJWTVerifier creates a verifier for the given shared secret
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: secret}
}

// Verify validates the token signature and expiry and extracts subject + email
func (v *JWTVerifier) Verify(ctx context.Context, tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{
		Subject: claims.Subject,
		Email:   claims.Email,
	}, nil
}
