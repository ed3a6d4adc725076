// Package server provides the HTTP API for the job listings service.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/job-listings/internal/export"
	"github.com/jonathan/job-listings/internal/search"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Validation failures map to 400; credential and upstream failures map to
// 500, as does anything unrecognized.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *export.ValidationError:
		return http.StatusBadRequest
	case *search.CredentialError, *export.CredentialError:
		return http.StatusInternalServerError
	case *search.UpstreamError, *export.UpstreamError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
