package event

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crediya/loan-service/pkg/events"
)

// DomainEvent is an alias for the shared events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ApplicationSubmitted is raised after a loan application is persisted with
// its initial workflow state.
type ApplicationSubmitted struct {
	events.BaseEvent
	Email            string          `json:"email"`
	IdentityDocument string          `json:"identity_document"`
	Amount           decimal.Decimal `json:"amount"`
	Term             time.Time       `json:"term"`
	StateID          int64           `json:"state_id"`
	LoanTypeID       int64           `json:"loan_type_id"`
}

// NewApplicationSubmitted builds the submission event for a saved application.
func NewApplicationSubmitted(
	applicationID int64,
	email, identityDocument string,
	amount decimal.Decimal,
	term time.Time,
	stateID, loanTypeID int64,
) ApplicationSubmitted {
	return ApplicationSubmitted{
		BaseEvent:        events.NewBaseEvent("loan.application.submitted", strconv.FormatInt(applicationID, 10), "Application"),
		Email:            email,
		IdentityDocument: identityDocument,
		Amount:           amount,
		Term:             term,
		StateID:          stateID,
		LoanTypeID:       loanTypeID,
	}
}
