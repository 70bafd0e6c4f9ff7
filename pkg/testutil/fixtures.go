package testutil

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fixed reference data ids matching the seed migrations.
const (
	PendingStateID  = int64(1)
	ApprovedStateID = int64(2)
	RejectedStateID = int64(3)

	PersonalLoanTypeID = int64(1)
	MortgageLoanTypeID = int64(2)
)

// Amount returns a decimal from its string form, panicking on bad input;
// intended for test literals only.
func Amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// FutureDate returns a date n days from now, truncated to midnight UTC.
func FutureDate(days int) time.Time {
	return time.Now().UTC().AddDate(0, 0, days).Truncate(24 * time.Hour)
}
