// Package errors defines the failure taxonomy shared by the resolver, the
// prefix list client and the reconciler.
//
// # Taxonomy
//
//   - NetworkError: the public IP service was unreachable or answered badly.
//   - RemoteError: the prefix list could not be read (NotFound, Transient, Auth).
//   - WriteError: the modification was rejected (VersionConflict,
//     CapacityExceeded, Transient).
//   - ConfigError: startup configuration is invalid. No cycle begins.
//
// Every typed error answers errors.Is for its sentinel (ErrNetwork,
// ErrVersionConflict, ...) so callers can branch without type assertions:
//
//	if errors.Is(err, apperrors.ErrVersionConflict) {
//	    // re-read and retry
//	}
package errors
