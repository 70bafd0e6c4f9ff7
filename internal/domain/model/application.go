package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Application is a submitted loan request. The ID is assigned by the
// repository on first save; StateID is attached by the submission pipeline
// once the initial workflow state is resolved.
type Application struct {
	ID               int64
	Amount           decimal.Decimal
	Term             time.Time // loan maturity date, strictly in the future at submission
	Email            string    // stored trimmed and lower-cased
	IdentityDocument string
	StateID          int64
	LoanTypeID       int64
}

// PendingRow is an Application projection joined with loan-type and state
// names, plus applicant data attached from the user directory when a
// matching profile exists. FullName stays empty and BaseSalary nil for
// applicants without a directory entry.
type PendingRow struct {
	ID               int64
	Amount           decimal.Decimal
	Term             time.Time
	Email            string
	IdentityDocument string
	StateID          int64
	LoanTypeID       int64
	StateName        string
	LoanTypeName     string
	FullName         string
	BaseSalary       *decimal.Decimal
}
