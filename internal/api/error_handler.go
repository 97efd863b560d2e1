package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrCartEmpty):
		return http.StatusBadRequest, "cart is empty"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found"
	case errors.Is(err, domain.ErrCartNotFound):
		return http.StatusNotFound, "cart not found"
	case errors.Is(err, domain.ErrCartItemNotFound):
		return http.StatusNotFound, "item not in cart"
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "email already in use"
	case errors.Is(err, domain.ErrProductExists):
		return http.StatusConflict, "product already exists"
	case errors.Is(err, domain.ErrCategoryExists):
		return http.StatusConflict, "category already exists"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
