package http

import (
	"errors"
	"net/http"

	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates application errors into HTTP responses.
// OTP failures get their own statuses so clients can distinguish a stale
// code (ask for a resend) from a mistyped one (try again).
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, donation.ErrOTPExpired):
		status = http.StatusGone
	case errors.Is(err, donation.ErrOTPMismatch):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict),
		errors.Is(err, errs.ErrResourceConflict):
		status = http.StatusConflict
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "internal server error"
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}
