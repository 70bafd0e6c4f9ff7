// Package validation holds the pure, I/O-free checks applied to a loan
// application before the submission pipeline touches any collaborator.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crediya/loan-service/internal/domain/errs"
	"github.com/crediya/loan-service/internal/domain/model"
)

var (
	maxAmount = decimal.NewFromInt(15_000_000)
	emailRe   = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)
)

// ValidateAndNormalize checks a candidate application in memory and
// normalizes its email (trimmed, lower-cased) in place — the one documented
// side effect. It returns a *errs.ValidationError on the first violation
// and performs no I/O.
func ValidateAndNormalize(a *model.Application) error {
	if a == nil {
		return errs.NewValidation("", errs.MsgBodyRequired)
	}

	if strings.TrimSpace(a.IdentityDocument) == "" {
		return errs.NewValidation("identityDocument", errs.MsgDocumentRequired)
	}

	if strings.TrimSpace(a.Email) == "" {
		return errs.NewValidation("email", errs.MsgEmailRequired)
	}
	emailNorm := strings.ToLower(strings.TrimSpace(a.Email))
	if !emailRe.MatchString(emailNorm) {
		return errs.NewValidation("email", errs.MsgEmailInvalid)
	}
	a.Email = emailNorm

	if a.Amount.IsZero() {
		return errs.NewValidation("amount", errs.MsgAmountRequired)
	}
	if a.Amount.Exponent() < -2 {
		return errs.NewValidation("amount", errs.MsgAmountDecimals)
	}
	if a.Amount.Sign() <= 0 || a.Amount.GreaterThan(maxAmount) {
		return errs.NewValidation("amount", errs.MsgAmountRange)
	}

	if a.Term.IsZero() {
		return errs.NewValidation("term", errs.MsgTermRequired)
	}
	if !a.Term.After(time.Now()) {
		return errs.NewValidation("term", errs.MsgTermFuture)
	}

	if a.LoanTypeID <= 0 {
		return errs.NewValidation("loanTypeId", errs.MsgLoanTypeRequired)
	}

	return nil
}
