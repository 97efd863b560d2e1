package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shoplane/commerce-api/internal/api/metrics"
	"github.com/shoplane/commerce-api/internal/api/middleware"
	"github.com/shoplane/commerce-api/internal/core/auth"
)

// sessionFrom returns the verified claims injected by the Session middleware,
// or nil when the request carried no valid token. This is the only place
// claim extraction happens; handlers hand the result straight to the access
// policy.
func sessionFrom(c echo.Context) *auth.Claims {
	claims, _ := c.Get(middleware.ClaimsKey).(*auth.Claims)
	return claims
}

// deny renders a denied access decision as-is: the decision's status and
// reason become the response, with no further interpretation.
func deny(c echo.Context, d auth.Decision) error {
	metrics.AccessDeniedTotal.WithLabelValues(strconv.Itoa(d.Status)).Inc()
	return c.JSON(d.Status, errorResponse{Error: d.Reason})
}

// pathID parses a numeric path parameter. Returns 0 and false on garbage; the
// caller maps that to a 400.
func pathID(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
