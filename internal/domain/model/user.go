package model

import "github.com/shopspring/decimal"

// User is an applicant profile sourced from the user-management service.
// It is never persisted by this service; it exists for identity
// verification and read-side enrichment only.
type User struct {
	FirstName        string
	LastName         string
	IdentityDocument string
	BaseSalary       decimal.Decimal
}
