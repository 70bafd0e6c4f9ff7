package errs

import "github.com/shopspring/decimal"

// User-facing validation messages.
const (
	MsgBodyRequired     = "application data is required"
	MsgDocumentRequired = "identity document is required"
	MsgDocumentNumeric  = "identity document must be numeric"
	MsgDocumentLength   = "identity document must be between 6 and 20 characters"
	MsgEmailRequired    = "email is required"
	MsgEmailInvalid     = "invalid email address"
	MsgAmountRequired   = "amount is required"
	MsgAmountDecimals   = "amount must not have more than 2 decimal places"
	MsgAmountRange      = "amount must be in (0, 15000000]"
	MsgTermRequired     = "term is required"
	MsgTermFuture       = "term must be a future date"
	MsgLoanTypeRequired = "loan type is required"
	MsgLoanTypeNotExist = "loan type does not exist"
	MsgUserInvalid      = "user data does not match the user-management system"
)

// AmountNotAllowed formats the loan-type bounds violation message.
func AmountNotAllowed(min, max decimal.Decimal) string {
	return "amount must be between " + min.String() + " and " + max.String()
}

// StateNotFound formats the missing-reference-state message.
func StateNotFound(code string) string {
	return "initial state '" + code + "' does not exist"
}
