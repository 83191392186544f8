package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
var New = errors.New

// Sentinel errors matched through errors.Is by the typed errors below.
var (
	// ErrNetwork indicates the public IP service could not be used.
	ErrNetwork = errors.New("network error")

	// ErrNotFound indicates the prefix list does not exist.
	ErrNotFound = errors.New("prefix list not found")

	// ErrAuth indicates a credential or permission failure.
	ErrAuth = errors.New("not authorized")

	// ErrTransient indicates a retryable service failure.
	ErrTransient = errors.New("transient failure")

	// ErrVersionConflict indicates the prefix list changed since it was read.
	ErrVersionConflict = errors.New("version conflict")

	// ErrCapacityExceeded indicates the prefix list has no room for the entry.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidConfig indicates the process configuration is unusable.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// NetworkError is returned by IP resolvers when the endpoint is unreachable,
// answers with a non-2xx status, or returns something that is not an address.
type NetworkError struct {
	URL     string
	Message string
	Err     error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolve %s: %s: %v", e.URL, e.Message, e.Err)
	}
	return fmt.Sprintf("resolve %s: %s", e.URL, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(url, message string, err error) *NetworkError {
	return &NetworkError{URL: url, Message: message, Err: err}
}

// RemoteKind classifies read-path failures.
type RemoteKind string

const (
	RemoteNotFound  RemoteKind = "not_found"
	RemoteTransient RemoteKind = "transient"
	RemoteAuth      RemoteKind = "auth"
)

// RemoteError is a failure talking to the prefix list API outside of a write.
type RemoteError struct {
	Kind   RemoteKind
	ListID string
	Code   string
	Err    error
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("prefix list %s: %s", e.ListID, e.Kind)
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap implements errors.Unwrap
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *RemoteError) Is(target error) bool {
	switch e.Kind {
	case RemoteNotFound:
		return target == ErrNotFound
	case RemoteAuth:
		return target == ErrAuth
	case RemoteTransient:
		return target == ErrTransient
	}
	return false
}

// Retryable reports whether a later attempt may succeed without operator action.
func (e *RemoteError) Retryable() bool {
	return e.Kind == RemoteTransient
}

// WriteKind classifies write-path failures.
type WriteKind string

const (
	WriteVersionConflict  WriteKind = "version_conflict"
	WriteCapacityExceeded WriteKind = "capacity_exceeded"
	WriteTransient        WriteKind = "transient"
)

// WriteError is a rejected or failed prefix list modification. The remote
// side applies modifications atomically, so a WriteError never means a
// partially applied change.
type WriteError struct {
	Kind    WriteKind
	ListID  string
	Version int64
	Code    string
	Err     error
}

// Error implements the error interface
func (e *WriteError) Error() string {
	msg := fmt.Sprintf("modify prefix list %s at version %d: %s", e.ListID, e.Version, e.Kind)
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap implements errors.Unwrap
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *WriteError) Is(target error) bool {
	switch e.Kind {
	case WriteVersionConflict:
		return target == ErrVersionConflict
	case WriteCapacityExceeded:
		return target == ErrCapacityExceeded
	case WriteTransient:
		return target == ErrTransient
	}
	return false
}

// Retryable reports whether the cycle should re-read and try again.
func (e *WriteError) Retryable() bool {
	return e.Kind == WriteVersionConflict || e.Kind == WriteTransient
}

// ConfigError represents a configuration error detected at startup.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// IsRetryable reports whether err is a failure that a fresh read-and-retry
// within the same cycle may overcome.
func IsRetryable(err error) bool {
	var we *WriteError
	if errors.As(err, &we) {
		return we.Retryable()
	}
	return false
}
