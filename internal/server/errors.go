package server

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrCatalogUnavailable indicates the catalog source could not be read
type ErrCatalogUnavailable struct {
	Cause error
}

func (e *ErrCatalogUnavailable) Error() string {
	return fmt.Sprintf("career catalog unavailable: %v", e.Cause)
}

func (e *ErrCatalogUnavailable) Unwrap() error {
	return e.Cause
}

// ErrCareerNotFound indicates a career id is not in the catalog
type ErrCareerNotFound struct {
	ID string
}

func (e *ErrCareerNotFound) Error() string {
	return fmt.Sprintf("career not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var catalogErr *ErrCatalogUnavailable
	var notFoundErr *ErrCareerNotFound

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &catalogErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
