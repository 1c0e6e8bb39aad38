package apperror

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Is(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantTarget error
		wantString string
	}{
		{
			name:       "transport failure",
			err:        NewUpstreamTransportError("openai", context.DeadlineExceeded),
			wantTarget: ErrUpstreamRequest,
			wantString: "openai request failed: context deadline exceeded",
		},
		{
			name:       "status failure",
			err:        NewUpstreamStatusError("notion", 401, `{"code":"unauthorized"}`),
			wantTarget: ErrUpstreamRequest,
			wantString: `notion response error 401: {"code":"unauthorized"}`,
		},
		{
			name:       "malformed result",
			err:        &MalformedResultError{Reason: "word is missing"},
			wantTarget: ErrMalformedResult,
			wantString: "malformed result: word is missing",
		},
		{
			name:       "invalid record",
			err:        &InvalidRecordError{Field: "meaning"},
			wantTarget: ErrInvalidRecord,
			wantString: "invalid record: meaning must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("caller > %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.wantTarget)
			assert.Equal(t, tt.wantString, tt.err.Error())
		})
	}
}

func TestUpstreamRequestError_UnwrapsCause(t *testing.T) {
	err := fmt.Errorf("client.LookupMeaning > %w", NewUpstreamTransportError("openai", context.Canceled))

	assert.ErrorIs(t, err, context.Canceled)

	var upstreamErr *UpstreamRequestError
	assert.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, "openai", upstreamErr.Service)
}
