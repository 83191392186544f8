package prefixlist

import (
	"errors"
	"strings"

	apperrors "prefix-list-updater/core/errors"
	"prefix-list-updater/core/reconcile"

	"github.com/aws/smithy-go"
)

// codeVersionMismatch is returned when CurrentVersion is stale.
const codeVersionMismatch = "PrefixListVersionMismatch"

var authCodes = map[string]struct{}{
	"AuthFailure":           {},
	"UnauthorizedOperation": {},
	"InvalidClientTokenId":  {},
	"ExpiredToken":          {},
	"RequestExpired":        {},
	"SignatureDoesNotMatch": {},
	"OptInRequired":         {},
	"Blocked":               {},
}

func errorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

func isAuthCode(code string) bool {
	if _, ok := authCodes[code]; ok {
		return true
	}
	return strings.HasPrefix(code, "AccessDenied")
}

func isNotFoundCode(code string) bool {
	return strings.HasPrefix(strings.ToLower(code), "invalidprefixlistid")
}

func isCapacityCode(code string) bool {
	return strings.Contains(code, "MaxEntries") || code == "ResourceLimitExceeded"
}

// classifyRead maps a read-path failure onto the remote error taxonomy.
// Anything not recognised as missing list or bad credentials is retryable.
func classifyRead(listID string, err error) error {
	code := errorCode(err)
	kind := apperrors.RemoteTransient
	switch {
	case isNotFoundCode(code):
		kind = apperrors.RemoteNotFound
	case isAuthCode(code):
		kind = apperrors.RemoteAuth
	}
	return &apperrors.RemoteError{Kind: kind, ListID: listID, Code: code, Err: err}
}

// classifyWrite maps a ModifyManagedPrefixList failure. Credential and
// missing-list failures are reported as read-path errors since retrying the
// write cannot fix them.
func classifyWrite(snapshot reconcile.Snapshot, err error) error {
	code := errorCode(err)

	switch {
	case isAuthCode(code) || isNotFoundCode(code):
		return classifyRead(snapshot.ListID, err)
	case code == codeVersionMismatch:
		return writeError(apperrors.WriteVersionConflict, snapshot, code, err)
	case isCapacityCode(code):
		return writeError(apperrors.WriteCapacityExceeded, snapshot, code, err)
	default:
		// includes IncorrectState: the list is mid-modification by someone else
		return writeError(apperrors.WriteTransient, snapshot, code, err)
	}
}

func writeError(kind apperrors.WriteKind, snapshot reconcile.Snapshot, code string, err error) *apperrors.WriteError {
	return &apperrors.WriteError{
		Kind:    kind,
		ListID:  snapshot.ListID,
		Version: snapshot.Version.Int64(),
		Code:    code,
		Err:     err,
	}
}
