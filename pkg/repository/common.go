package repository

import (
	"errors"
	"strings"
)

// errNotRetryable is the termination error for repeater, matched by criticalError
var errNotRetryable = errors.New("not retryable")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// Is matches errNotRetryable, the wrapped error is reachable with Unwrap
func (e *criticalError) Is(target error) bool {
	return target == errNotRetryable //nolint:errorlint // sentinel identity
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
