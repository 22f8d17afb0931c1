package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenNotValidYet      = errors.New("token is not yet valid")
	ErrTokenInvalid          = errors.New("token is invalid")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
)

// Manager is a JWT token generator and verifier.
type Manager struct {
	signer  Signer
	issuer  string
	keyFunc jwt.Keyfunc
}

// Claims embeds the registered claims and carries a free-form payload.
// Subject holds the account uid.
type Claims struct {
	jwt.RegisteredClaims
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// Signer defines the interface for signing JWT claims.
type Signer interface {
	Sign(claims jwt.Claims) (string, error)
}

// Option defines a function that can modify JWT claims.
type Option func(*Claims)

// WithExpiresAt sets a specific expiration time for the token.
func WithExpiresAt(t time.Time) Option {
	return func(c *Claims) {
		c.ExpiresAt = jwt.NewNumericDate(t)
	}
}

// WithNotBefore sets a specific not-before time for the token.
func WithNotBefore(t time.Time) Option {
	return func(c *Claims) {
		c.NotBefore = jwt.NewNumericDate(t)
	}
}

// WithPayload attaches extra payload entries to the claims.
func WithPayload(payload map[string]interface{}) Option {
	return func(c *Claims) {
		c.Payload = payload
	}
}

// Generate generates a new token for the given subject.
func (g *Manager) Generate(subject string, opts ...Option) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   g.issuer,
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}

	for _, opt := range opts {
		opt(claims)
	}

	return g.signer.Sign(claims)
}

// Parse validates the token signature, expiry and issuer, and returns the claims.
func (g *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, g.keyFunc, jwt.WithIssuer(g.issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, ErrTokenMalformed
		} else if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, ErrTokenNotValidYet
		} else if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, ErrTokenSignatureInvalid
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
