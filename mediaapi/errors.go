package mediaapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid media API configuration")
	// ErrFetchFailed indicates the backend answered with a non-success status
	ErrFetchFailed = errors.New("fetch failed")
)

// Operation names reported by FetchFailedError.
const (
	OpListMedia           = "media list"
	OpGetMediaByID        = "media by id"
	OpCreateMedia         = "create media"
	OpUpdateMedia         = "update media"
	OpDeleteMedia         = "delete media"
	OpGenerateRandomMedia = "generate random media"
	OpHealth              = "health check"
)

// FetchFailedError is returned when a request completes with a status
// outside the 2xx range. The response body is never read.
type FetchFailedError struct {
	Operation  string
	StatusCode int
}

// Error implements the error interface
func (e *FetchFailedError) Error() string {
	return fmt.Sprintf("failed to fetch %s: status %d", e.Operation, e.StatusCode)
}

// Is reports whether target is ErrFetchFailed
func (e *FetchFailedError) Is(target error) bool {
	return target == ErrFetchFailed
}

// IsNotFound checks if the error indicates a not found response
func (e *FetchFailedError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsServerError checks if the backend failed with a 5xx status
func (e *FetchFailedError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode <= 599
}

// AsFetchFailed extracts a FetchFailedError from err, if any.
func AsFetchFailed(err error) (*FetchFailedError, bool) {
	var ffe *FetchFailedError
	if errors.As(err, &ffe) {
		return ffe, true
	}
	return nil, false
}
