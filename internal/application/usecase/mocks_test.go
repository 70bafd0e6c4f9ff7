package usecase_test

import (
	"context"
	"fmt"

	"github.com/crediya/loan-service/internal/domain/model"
	"github.com/crediya/loan-service/pkg/events"
)

// --- Mock implementations ---

type mockApplicationRepository struct {
	saveFunc        func(ctx context.Context, app *model.Application) (*model.Application, error)
	findPendingFunc func(ctx context.Context, c model.PendingCriteria) (model.Page[model.PendingRow], error)

	saveCalls        int
	findPendingCalls int
	savedApps        []*model.Application
	lastCriteria     model.PendingCriteria
}

func (m *mockApplicationRepository) Save(ctx context.Context, app *model.Application) (*model.Application, error) {
	m.saveCalls++
	if m.saveFunc != nil {
		return m.saveFunc(ctx, app)
	}
	saved := *app
	saved.ID = int64(100 + len(m.savedApps))
	m.savedApps = append(m.savedApps, &saved)
	return &saved, nil
}

func (m *mockApplicationRepository) FindPending(ctx context.Context, c model.PendingCriteria) (model.Page[model.PendingRow], error) {
	m.findPendingCalls++
	m.lastCriteria = c
	if m.findPendingFunc != nil {
		return m.findPendingFunc(ctx, c)
	}
	return model.NewPage([]model.PendingRow{}, c.Page, c.Size, 0), nil
}

type mockLoanTypeRepository struct {
	findByIDFunc func(ctx context.Context, id int64) (*model.LoanType, error)
	findCalls    int
}

func (m *mockLoanTypeRepository) FindByID(ctx context.Context, id int64) (*model.LoanType, error) {
	m.findCalls++
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockStatesRepository struct {
	findByCodeFunc func(ctx context.Context, code string) (*model.State, error)
	findCalls      int
}

func (m *mockStatesRepository) FindByCode(ctx context.Context, code string) (*model.State, error) {
	m.findCalls++
	if m.findByCodeFunc != nil {
		return m.findByCodeFunc(ctx, code)
	}
	return nil, nil
}

type mockUserGateway struct {
	verifyFunc    func(ctx context.Context, document, email string) (bool, error)
	loadUsersFunc func(ctx context.Context) ([]model.User, error)

	verifyCalls    int
	loadUsersCalls int
}

func (m *mockUserGateway) Verify(ctx context.Context, document, email string) (bool, error) {
	m.verifyCalls++
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, document, email)
	}
	return true, nil
}

func (m *mockUserGateway) LoadUsers(ctx context.Context) ([]model.User, error) {
	m.loadUsersCalls++
	if m.loadUsersFunc != nil {
		return m.loadUsersFunc(ctx)
	}
	return nil, nil
}

// domainEvent shortens mock signatures.
type domainEvent = events.DomainEvent

type mockEventPublisher struct {
	publishFunc func(ctx context.Context, evts ...domainEvent) error

	published []events.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.published = append(m.published, evts...)
	return nil
}

var errGatewayDown = fmt.Errorf("user service unavailable")
