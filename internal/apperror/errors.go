// Package apperror defines the failure kinds of the lookup and registration pipeline.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrUpstreamRequest = errors.New("upstream request failed")
	ErrMalformedResult = errors.New("malformed lookup result")
	ErrInvalidRecord   = errors.New("invalid record")
)

// UpstreamRequestError is returned when a call to OpenAI or Notion fails in transport
// or returns a non-success status.
type UpstreamRequestError struct {
	Service    string
	StatusCode int
	Body       string
	Err        error
}

func NewUpstreamTransportError(service string, err error) *UpstreamRequestError {
	return &UpstreamRequestError{Service: service, Err: err}
}

func NewUpstreamStatusError(service string, statusCode int, body string) *UpstreamRequestError {
	return &UpstreamRequestError{Service: service, StatusCode: statusCode, Body: body}
}

func (e *UpstreamRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
	}
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s request failed: %s", e.Service, e.Body)
	}
	return fmt.Sprintf("%s response error %d: %s", e.Service, e.StatusCode, e.Body)
}

func (e *UpstreamRequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstreamRequest}
	}
	return []error{ErrUpstreamRequest, e.Err}
}

// MalformedResultError is returned when the model output is not a JSON object
// or lacks the required fields.
type MalformedResultError struct {
	Reason string
	Raw    string
	Err    error
}

func (e *MalformedResultError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed result: %s: %v", e.Reason, e.Err)
	}
	return "malformed result: " + e.Reason
}

func (e *MalformedResultError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedResult}
	}
	return []error{ErrMalformedResult, e.Err}
}

// InvalidRecordError is returned by the persistence boundary when a required field is empty.
type InvalidRecordError struct {
	Field string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid record: %s must not be empty", e.Field)
}

func (e *InvalidRecordError) Unwrap() error { return ErrInvalidRecord }
