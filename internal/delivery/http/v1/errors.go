package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-tracker/internal/services"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgRouteNotFound      = "Route not found"
	msgUserAlreadyExists  = "User already exists"
	msgInvalidCredentials = "Invalid email or password"
	msgMissingToken       = "Access token is missing"
	msgInvalidToken       = "Invalid or expired token"
	msgTaskNotFound       = "Task not found"
)

type apiError struct {
	Code    int
	Message string
	Errors  []string
}

func newAPIError(code int, message string, errs ...string) apiError {
	if errs == nil {
		errs = []string{}
	}
	return apiError{
		Code:    code,
		Message: message,
		Errors:  errs,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, errorEnvelope{
		StatusCode: err.Code,
		Message:    err.Message,
		Success:    false,
		Errors:     err.Errors,
	})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string, errs ...string) apiError {
	return newAPIError(http.StatusBadRequest, message, errs...)
}

func newUnauthorizedError(message string) apiError {
	return newAPIError(http.StatusUnauthorized, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

// mapServiceError turns a service error into the error sent to the client.
// Errors it doesn't know become an opaque 500.
func mapServiceError(err error) apiError {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return newBadRequestError(validationErr.Reason, validationErr.Reason)
	case errors.Is(err, services.ErrUserAlreadyExists):
		return newBadRequestError(msgUserAlreadyExists)
	case errors.Is(err, services.ErrInvalidCredentials):
		return newUnauthorizedError(msgInvalidCredentials)
	case errors.Is(err, services.ErrMissingToken):
		return newUnauthorizedError(msgMissingToken)
	case errors.Is(err, services.ErrInvalidToken):
		return newUnauthorizedError(msgInvalidToken)
	case errors.Is(err, services.ErrTaskNotFound):
		return newNotFoundError(msgTaskNotFound)
	default:
		return newStatusTextError(http.StatusInternalServerError)
	}
}
