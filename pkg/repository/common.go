package repository

import (
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// errCritical is passed to repeater as a stop error, it matches any criticalError
var errCritical = &criticalError{}

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	if e.err == nil {
		return "critical error"
	}
	return e.err.Error()
}

func (e *criticalError) Unwrap() error { return e.err }

// Is makes every criticalError match errCritical
func (e *criticalError) Is(target error) bool {
	_, ok := target.(*criticalError)
	return ok
}

// lockRetrier retries writes while sqlite reports the database as locked
func lockRetrier() *repeater.Repeater {
	return repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
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
