package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shoplane/commerce-api/internal/core/auth"
)

// ClaimsKey is the echo context key under which Session stores the verified
// claims.
const ClaimsKey = "session_claims"

// Session extracts the bearer token from the Authorization header, verifies
// it and injects the claims into the request context. It never rejects a
// request by itself: missing or invalid tokens simply leave no claims, and
// the per-route access policy decides what that means. A missing "Bearer "
// prefix is tolerated — the whole header value is treated as the token.
func Session(codec *auth.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			raw := header
			if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
				raw = header[7:]
			}

			if claims, ok := codec.Verify(strings.TrimSpace(raw)); ok {
				c.Set(ClaimsKey, claims)
			}

			return next(c)
		}
	}
}
