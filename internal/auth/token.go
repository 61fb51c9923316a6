package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SmokeTestSubject is the reserved claims subject used by integration
// smoke tests. Principal resolution short-circuits on it and returns a
// fixed synthetic account without touching the database. It is the nil
// UUID, which no real account can be created with.
const SmokeTestSubject = "00000000-0000-0000-0000-000000000000"

var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token has expired")
)

// Claims is the session token payload. IsStudent discriminates which
// account table the subject id points into.
type Claims struct {
	Email     string `json:"email"`
	IsStudent bool   `json:"isStudent"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies session tokens with a symmetric secret
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager. TTL defaults to 24 hours,
// the fixed session lifetime.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// TTL returns the configured token lifetime
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue mints a signed token for the given subject. The token carries
// no state beyond its claims; nothing is persisted.
func (m *TokenManager) Issue(subject, email string, isStudent bool) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email:     email,
		IsStudent: isStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks signature and expiry and decodes the claims.
// The three failure kinds stay distinguishable for logging; callers
// gate on any non-nil error.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
