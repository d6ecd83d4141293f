package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prompthub/prompthub/pkg/models"
)

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// BadRequestError returns a 400 with a message that is safe to expose
func BadRequestError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context, reason string) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "You are not authorized to access this resource.",
	})
}

// QuotaError returns a 403 when the free-tier saved-prompt cap is reached.
// The message is specific on purpose: it directs the user to upgrade.
func QuotaError(c echo.Context, message string) error {
	return c.JSON(http.StatusForbidden, models.ErrorResponse{
		Error:   "quota_exceeded",
		Message: message,
	})
}

// NotFoundError returns a generic not found error.
// "Absent" and "exists but not yours" are deliberately indistinguishable.
func NotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found.",
	})
}

// ConflictError returns a generic conflict error
func ConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "conflict",
		Message: message, // Message is safe to expose (e.g., "Account is already subscribed")
	})
}
