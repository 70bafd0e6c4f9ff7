// Package port declares the driven-side contracts of the origination core.
// Adapters live under internal/infrastructure.
package port

import (
	"context"

	"github.com/crediya/loan-service/internal/domain/model"
	"github.com/crediya/loan-service/pkg/events"
)

// ApplicationRepository persists and queries loan applications.
type ApplicationRepository interface {
	// Save inserts the application and returns it with the generated id.
	Save(ctx context.Context, app *model.Application) (*model.Application, error)
	// FindPending returns one page of applications matching the normalized
	// criteria, joined with state and loan-type names, ordered by
	// descending application id. When the criteria carries no state id the
	// query filters on the default pending state.
	FindPending(ctx context.Context, criteria model.PendingCriteria) (model.Page[model.PendingRow], error)
}

// LoanTypeRepository looks up loan products. FindByID returns (nil, nil)
// when the loan type does not exist.
type LoanTypeRepository interface {
	FindByID(ctx context.Context, id int64) (*model.LoanType, error)
}

// StatesRepository looks up workflow states by short code. FindByCode
// returns (nil, nil) when no state carries the code.
type StatesRepository interface {
	FindByCode(ctx context.Context, code string) (*model.State, error)
}

// UserGateway talks to the external user-management service.
type UserGateway interface {
	// Verify reports whether the identity-document/email pair is known.
	Verify(ctx context.Context, documentNumber, email string) (bool, error)
	// LoadUsers returns a full snapshot of the applicant directory.
	LoadUsers(ctx context.Context) ([]model.User, error)
}

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}
