package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	identityapp "github.com/amconceito/storefront/internal/application/identity"
	"github.com/amconceito/storefront/internal/domain/shared"
	"github.com/amconceito/storefront/internal/infrastructure/config"
)

var (
	// ErrInvalidToken indicates the token failed signature or structural checks.
	ErrInvalidToken = shared.NewDomainError("INVALID_TOKEN", "Session token is invalid")
	// ErrExpiredToken indicates the token is past its expiry.
	ErrExpiredToken = shared.NewDomainError("EXPIRED_TOKEN", "Session has expired")
)

var _ identityapp.TokenIssuer = (*SessionManager)(nil)

// sessionClaims carries the admin username in the JWT subject.
type sessionClaims struct {
	jwt.RegisteredClaims
}

// SessionManager issues and validates signed admin session tokens.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewSessionManager builds a session manager from the session configuration.
func NewSessionManager(cfg *config.SessionConfig) *SessionManager {
	return &SessionManager{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		issuer: "storefront",
	}
}

// Issue signs a session token for the given admin username.
func (m *SessionManager) Issue(username string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate checks the token signature and expiry and returns the admin username.
func (m *SessionManager) Validate(tokenString string) (string, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
