package model

import "github.com/shopspring/decimal"

// LoanType is a loan product definition. Read-only reference data.
type LoanType struct {
	ID                  int64
	Name                string
	AmountMin           decimal.Decimal
	AmountMax           decimal.Decimal
	InterestRate        decimal.Decimal
	AutomaticValidation bool
}
