package yahoo

import (
	"fmt"
)

// ErrorType represents the category of error that occurred during a page fetch
type ErrorType string

const (
	// ErrorTypeNetwork indicates a network-level error (connection refused, DNS, etc.)
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeServer indicates a server error (HTTP 5xx)
	ErrorTypeServer ErrorType = "server"
	// ErrorTypeClient indicates a client error (HTTP 4xx)
	ErrorTypeClient ErrorType = "client"
	// ErrorTypeDecode indicates the response was received but its shape was not usable
	ErrorTypeDecode ErrorType = "decode"
)

// FetchError represents a structured error from a screener request.
// The pipeline swallows these at page granularity; the type and offset
// make the log line say exactly which slice of data was lost and why.
type FetchError struct {
	Type       ErrorType
	Offset     int
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error at offset %d (status %d): %s", e.Type, e.Offset, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error at offset %d: %s", e.Type, e.Offset, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewNetworkError creates a network error for the given page offset
func NewNetworkError(offset int, cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeNetwork,
		Offset:  offset,
		Message: "request failed",
		Cause:   cause,
	}
}

// NewStatusError classifies a non-success HTTP status into a FetchError
func NewStatusError(offset, statusCode int) *FetchError {
	typ := ErrorTypeClient
	if statusCode >= 500 {
		typ = ErrorTypeServer
	}
	return &FetchError{
		Type:       typ,
		Offset:     offset,
		StatusCode: statusCode,
		Message:    "screener returned an error",
	}
}

// NewDecodeError creates a decode error for the given page offset
func NewDecodeError(offset int, message string) *FetchError {
	return &FetchError{
		Type:    ErrorTypeDecode,
		Offset:  offset,
		Message: message,
	}
}
