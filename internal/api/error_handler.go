package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deskhive/booking-system/internal/core/domain"
)

// errorResponse is the canonical envelope for all API errors: status is "fail"
// for client errors and "error" for server errors.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"status": "...", "message": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		status := "fail"
		if code >= http.StatusInternalServerError {
			status = "error"
		}
		_ = c.JSON(code, errorResponse{Status: status, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic codes. Credential failures are
	// deliberately collapsed into one message so callers cannot tell an
	// unknown username from a wrong password.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect username or password!"
	case errors.Is(err, domain.ErrAccountInactive):
		return http.StatusUnauthorized, "Your account is not activated yet! Please check your email!"
	case errors.Is(err, domain.ErrPasswordMismatch):
		return http.StatusBadRequest, "Passwords do not match!"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "Username or email already in use!"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "Role must be one of: admin, owner, user!"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You do not have permission to perform this action!"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found!"
	case errors.Is(err, domain.ErrRoomNotFound):
		return http.StatusNotFound, "Room not found!"
	case errors.Is(err, domain.ErrRoomExists):
		return http.StatusBadRequest, "A room with this name already exists!"
	case errors.Is(err, domain.ErrFloorNotFound):
		return http.StatusNotFound, "Floor not found!"
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound, "Employee not found!"
	case errors.Is(err, domain.ErrVisitorNotFound):
		return http.StatusNotFound, "Visitor not found!"
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found!"
	case errors.Is(err, domain.ErrOrderCancelled):
		return http.StatusBadRequest, "This order has already been cancelled!"
	case errors.Is(err, domain.ErrInvalidBookingDates):
		return http.StatusBadRequest, "Booking dates are invalid!"
	case errors.Is(err, domain.ErrVoucherNotFound):
		return http.StatusNotFound, "Voucher not found!"
	case errors.Is(err, domain.ErrVoucherExists):
		return http.StatusBadRequest, "A voucher with this code already exists!"
	case errors.Is(err, domain.ErrVoucherInactive):
		return http.StatusBadRequest, "This voucher is no longer active!"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went very wrong!"
}
