package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// Claims is the decoded, verified payload of a session token. It lives for a
// single request and is never persisted.
type Claims struct {
	UserID int    `json:"id"`
	Role   string `json:"role"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the claims carry the admin role. Safe on nil.
func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == domain.RoleAdmin
}

// Codec signs and verifies session tokens (HS256). The secret is loaded once
// at startup; beyond it the codec holds no state and is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for the user carrying id, role, name and
// email, with iat set to now and exp to now plus the configured TTL.
func (tc *Codec) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.secret)
}

// Verify parses and validates a raw token. It returns (nil, false) for a bad
// signature, wrong algorithm, malformed encoding or expired token — never an
// error, so callers can map any failure to a uniform 401. Callers must check
// for an empty token themselves before calling.
func (tc *Codec) Verify(raw string) (*Claims, bool) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, false
	}
	return claims, true
}
