package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	apperrors "prefix-list-updater/core/errors"

	"github.com/stretchr/testify/assert"
)

func TestWriteError_Is(t *testing.T) {
	tests := []struct {
		name      string
		kind      apperrors.WriteKind
		sentinel  error
		retryable bool
	}{
		{"VersionConflict", apperrors.WriteVersionConflict, apperrors.ErrVersionConflict, true},
		{"CapacityExceeded", apperrors.WriteCapacityExceeded, apperrors.ErrCapacityExceeded, false},
		{"Transient", apperrors.WriteTransient, apperrors.ErrTransient, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("cycle: %w", &apperrors.WriteError{Kind: tt.kind, ListID: "pl-1", Version: 5})
			assert.True(t, stderrors.Is(err, tt.sentinel))
			assert.Equal(t, tt.retryable, apperrors.IsRetryable(err))
		})
	}
}

func TestRemoteError_Is(t *testing.T) {
	tests := []struct {
		kind      apperrors.RemoteKind
		sentinel  error
		retryable bool
	}{
		{apperrors.RemoteNotFound, apperrors.ErrNotFound, false},
		{apperrors.RemoteAuth, apperrors.ErrAuth, false},
		{apperrors.RemoteTransient, apperrors.ErrTransient, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := &apperrors.RemoteError{Kind: tt.kind, ListID: "pl-1", Code: "X"}
			assert.True(t, stderrors.Is(err, tt.sentinel))
			assert.Equal(t, tt.retryable, err.Retryable())
			assert.Contains(t, err.Error(), "pl-1")
			assert.Contains(t, err.Error(), "(X)")
		})
	}

	// read-path failures never trigger an in-cycle retry
	assert.False(t, apperrors.IsRetryable(&apperrors.RemoteError{Kind: apperrors.RemoteTransient}))
}

func TestNetworkError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := apperrors.NewNetworkError("http://ip.example", "request failed", cause)

	assert.True(t, stderrors.Is(err, apperrors.ErrNetwork))
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "resolve http://ip.example: request failed: connection refused", err.Error())
}

func TestConfigError(t *testing.T) {
	err := apperrors.NewConfigError("sync.prefix_list_id", "is required")
	assert.True(t, stderrors.Is(err, apperrors.ErrInvalidConfig))
	assert.Equal(t, "configuration error for sync.prefix_list_id: is required", err.Error())
}
