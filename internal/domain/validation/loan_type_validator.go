package validation

import (
	"github.com/crediya/loan-service/internal/domain/errs"
	"github.com/crediya/loan-service/internal/domain/model"
)

// ValidateAmount confirms the requested amount lies within the loan type's
// bounds, inclusive on both ends. The failure message carries both bounds.
func ValidateAmount(a *model.Application, loanType *model.LoanType) error {
	if a.Amount.IsZero() ||
		a.Amount.LessThan(loanType.AmountMin) ||
		a.Amount.GreaterThan(loanType.AmountMax) {
		return errs.NewValidation("amount", errs.AmountNotAllowed(loanType.AmountMin, loanType.AmountMax))
	}
	return nil
}
