// Package valueobject contains domain value objects for the Finance Hub system.
package valueobject

import "time"

// CheckStatus is the tri-state outcome of a recurring-expense check.
type CheckStatus string

const (
	// CheckStatusMatched means a ledger transaction was found for the
	// expected occurrence.
	CheckStatusMatched CheckStatus = "MATCHED"
	// CheckStatusPending means no transaction was found but the expected
	// date is still in the future.
	CheckStatusPending CheckStatus = "PENDING"
	// CheckStatusMissing means no transaction was found and the expected
	// date has passed.
	CheckStatusMissing CheckStatus = "MISSING"
)

// IsValid reports whether s is one of the three defined statuses.
func (s CheckStatus) IsValid() bool {
	switch s {
	case CheckStatusMatched, CheckStatusPending, CheckStatusMissing:
		return true
	}
	return false
}

// DeriveCheckStatus is a total function from (candidate count, now, expected
// occurrence date) to a check status. Both times are compared at day
// granularity in UTC.
func DeriveCheckStatus(candidateCount int, now, expectedDate time.Time) CheckStatus {
	if candidateCount > 0 {
		return CheckStatusMatched
	}
	if TruncateToDay(now).Before(TruncateToDay(expectedDate)) {
		return CheckStatusPending
	}
	return CheckStatusMissing
}

// TruncateToDay strips the time-of-day component in UTC.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
