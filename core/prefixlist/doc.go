// Package prefixlist reads and modifies AWS VPC managed prefix lists.
//
// It wraps the EC2 client from aws-sdk-go-v2 behind the API interface so the
// reconciler can be tested against mocks (see core/prefixlist/mocks).
//
// # Consistency
//
// Read describes the list to learn its current version and then pages
// through GetManagedPrefixListEntries with TargetVersion pinned to that
// version. Apply passes the same version as CurrentVersion; EC2 rejects the
// whole modification with PrefixListVersionMismatch if another writer got
// there first. Nothing is ever partially applied.
//
// # Errors
//
// AWS error codes are mapped onto core/errors:
//
//   - InvalidPrefixListID.*: RemoteError{NotFound}
//   - AuthFailure, UnauthorizedOperation, AccessDenied*, ...: RemoteError{Auth}
//   - PrefixListVersionMismatch: WriteError{VersionConflict}
//   - *MaxEntries*: WriteError{CapacityExceeded}
//   - everything else (IncorrectState, throttling, 5xx): Transient
package prefixlist
