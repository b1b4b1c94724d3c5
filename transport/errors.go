package transport

import (
	"errors"
	"fmt"
)

var (
	ErrBaseURLInvalid  = errors.New("transport: base url must be an http or https url")
	ErrAssetIDRequired = errors.New("transport: asset id required")
	ErrMissingData     = errors.New("transport: missing data in response")
)

// APIError is an error envelope returned by the engine API.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("transport: api error %d: %s", e.Code, e.Message)
	}
	return "transport: api error: " + e.Message
}

// StatusError reports a non-OK HTTP status from the engine API.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("transport: server returned HTTP code %d", e.StatusCode)
}
