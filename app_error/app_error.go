package app_error

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

// New builds an error carrying an HTTP status for the response layer.
func New(status int, message string) error {
	return statusError{error: errors.New(message), status: status}
}

func Wrap(status int, err error) error {
	return statusError{error: err, status: status}
}

// HTTPStatus extracts the status carried by err, defaulting to 500.
func HTTPStatus(err error) int {
	var carrier interface{ HTTPStatus() int }
	if errors.As(err, &carrier) {
		return carrier.HTTPStatus()
	}
	return http.StatusInternalServerError
}

func Respond(c *gin.Context, err error) {
	c.JSON(HTTPStatus(err), gin.H{"error": err.Error()})
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}
