package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/newsdesk/news-api/internal/core/domain"
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

	// Known domain errors. Identity conflicts, bad credentials and invalid
	// ids all surface as 400 with the messages the web client renders.
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusBadRequest, "Email already exists"
	case errors.Is(err, domain.ErrInvalidLogin):
		return http.StatusBadRequest, "Email or password is incorrect"
	case errors.Is(err, domain.ErrInvalidUserOrRole):
		return http.StatusBadRequest, "Invalid User ID or Role Name"
	case errors.Is(err, domain.ErrRoleAlreadyAssigned):
		return http.StatusBadRequest, "User already has this role"
	case errors.Is(err, domain.ErrAuthorNotFound):
		return http.StatusBadRequest, "Invalid Author ID"
	case errors.Is(err, domain.ErrNewsNotFound):
		return http.StatusBadRequest, "Invalid News Id"
	case errors.Is(err, domain.ErrInvalidPublicationDate):
		return http.StatusBadRequest, "Publication Date must be between today and a week from today."
	case errors.Is(err, domain.ErrImageTypeNotAllowed):
		return http.StatusBadRequest, "Invalid image type, only (jpg, png, and jpeg) are allowed."
	case errors.Is(err, domain.ErrImageTooLarge):
		return http.StatusBadRequest, "Max allowed size for image is 2MB."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
