package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrInvalidConfig,
		ErrNotFound,
		ErrAccessDenied,
		ErrListFailed,
		ErrReadFailed,
		ErrObjectTooLarge,
	}

	seen := make(map[string]bool)
	for _, err := range sentinels {
		msg := err.Error()
		require.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

// mockAPIError implements smithy.APIError for testing.
type mockAPIError struct {
	code    string
	message string
}

func (e *mockAPIError) ErrorCode() string             { return e.code }
func (e *mockAPIError) ErrorMessage() string          { return e.message }
func (e *mockAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultUnknown }
func (e *mockAPIError) Error() string                 { return fmt.Sprintf("%s: %s", e.code, e.message) }

func TestWrapS3Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		fallback error
		want     error
	}{
		{"NoSuchKey code", &mockAPIError{code: "NoSuchKey"}, ErrReadFailed, ErrNotFound},
		{"NotFound code", &mockAPIError{code: "NotFound"}, ErrReadFailed, ErrNotFound},
		{"NoSuchBucket code", &mockAPIError{code: "NoSuchBucket"}, ErrListFailed, ErrNotFound},
		{"AccessDenied code", &mockAPIError{code: "AccessDenied"}, ErrListFailed, ErrAccessDenied},
		{"Forbidden code", &mockAPIError{code: "Forbidden"}, ErrReadFailed, ErrAccessDenied},
		{"unknown code uses fallback", &mockAPIError{code: "SlowDown"}, ErrListFailed, ErrListFailed},
		{"NoSuchKey type", &types.NoSuchKey{}, ErrReadFailed, ErrNotFound},
		{"plain error uses fallback", errors.New("connection reset"), ErrReadFailed, ErrReadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := wrapS3Error(tt.err, tt.fallback)
			require.ErrorIs(t, wrapped, tt.want)
			require.Contains(t, wrapped.Error(), tt.err.Error())
		})
	}
}
