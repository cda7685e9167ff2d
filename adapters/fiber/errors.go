package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/ecocycle/server/core"
)

// failure is the error body the web client renders inline.
func failure(c fiber.Ctx, err error) error {
	return c.Status(mapErrorToStatus(err)).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}

// mapErrorToStatus maps core error types to HTTP status codes
func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrInvalidToken),
		errors.Is(err, core.ErrSessionNotFound),
		errors.Is(err, core.ErrSessionExpired):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrForbidden):
		return http.StatusForbidden

	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrPickupNotFound),
		errors.Is(err, core.ErrOfferNotFound),
		errors.Is(err, core.ErrNoItemDetected):
		return http.StatusNotFound

	case errors.Is(err, core.ErrUserExists),
		errors.Is(err, core.ErrPickupNotCancellable),
		errors.Is(err, core.ErrInvalidTransition),
		errors.Is(err, core.ErrInsufficientCoins):
		return http.StatusConflict

	case errors.Is(err, core.ErrNameRequired),
		errors.Is(err, core.ErrEmailRequired),
		errors.Is(err, core.ErrPasswordRequired),
		errors.Is(err, core.ErrPasswordMismatch),
		errors.Is(err, core.ErrInvalidRole),
		errors.Is(err, core.ErrMessageRequired),
		errors.Is(err, core.ErrAddressRequired),
		errors.Is(err, core.ErrDateRequired),
		errors.Is(err, core.ErrDateInPast),
		errors.Is(err, core.ErrTimeSlotRequired),
		errors.Is(err, core.ErrImageRequired),
		errors.Is(err, core.ErrInvalidRedeemCode):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
