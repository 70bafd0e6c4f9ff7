package usecase_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crediya/loan-service/internal/application/usecase"
	"github.com/crediya/loan-service/internal/domain/errs"
	"github.com/crediya/loan-service/internal/domain/model"
	"github.com/crediya/loan-service/pkg/testutil"
)

type generateFixture struct {
	appRepo   *mockApplicationRepository
	loanTypes *mockLoanTypeRepository
	states    *mockStatesRepository
	gateway   *mockUserGateway
	publisher *mockEventPublisher
	uc        *usecase.GenerateRequestUseCase
}

func newGenerateFixture() *generateFixture {
	f := &generateFixture{
		appRepo:   &mockApplicationRepository{},
		loanTypes: &mockLoanTypeRepository{},
		states:    &mockStatesRepository{},
		gateway:   &mockUserGateway{},
		publisher: &mockEventPublisher{},
	}
	f.loanTypes.findByIDFunc = func(_ context.Context, id int64) (*model.LoanType, error) {
		return &model.LoanType{
			ID:        id,
			Name:      "personal",
			AmountMin: testutil.Amount("1000"),
			AmountMax: testutil.Amount("10000000"),
		}, nil
	}
	f.states.findByCodeFunc = func(_ context.Context, code string) (*model.State, error) {
		return &model.State{ID: testutil.PendingStateID, Name: "pending review", Code: code}, nil
	}
	f.uc = usecase.NewGenerateRequestUseCase(
		f.appRepo, f.states, f.loanTypes, usecase.NewVerifyUserUseCase(f.gateway),
		f.publisher, slog.Default(),
	)
	return f
}

func validSubmission() *model.Application {
	return &model.Application{
		Amount:           testutil.Amount("250000.50"),
		Term:             testutil.FutureDate(365),
		Email:            "Juan.Perez@Crediya.com",
		IdentityDocument: "1020304050",
		LoanTypeID:       testutil.PersonalLoanTypeID,
	}
}

func TestGenerateRequest_Execute(t *testing.T) {
	t.Run("persists a valid application with the pending state", func(t *testing.T) {
		f := newGenerateFixture()

		saved, err := f.uc.Execute(context.Background(), validSubmission())

		require.NoError(t, err)
		assert.NotZero(t, saved.ID)
		assert.Equal(t, testutil.PendingStateID, saved.StateID)
		assert.Equal(t, "juan.perez@crediya.com", saved.Email)
		assert.Equal(t, 1, f.appRepo.saveCalls)
		assert.Len(t, f.publisher.published, 1)
		assert.Equal(t, "loan.application.submitted", f.publisher.published[0].EventType())
	})

	t.Run("validation failure touches no collaborator", func(t *testing.T) {
		f := newGenerateFixture()
		app := validSubmission()
		app.Email = "not-an-email"

		_, err := f.uc.Execute(context.Background(), app)

		require.Error(t, err)
		ve, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "email", ve.Field)

		assert.Zero(t, f.gateway.verifyCalls)
		assert.Zero(t, f.loanTypes.findCalls)
		assert.Zero(t, f.states.findCalls)
		assert.Zero(t, f.appRepo.saveCalls)
	})

	t.Run("nil application touches no collaborator", func(t *testing.T) {
		f := newGenerateFixture()

		_, err := f.uc.Execute(context.Background(), nil)

		require.Error(t, err)
		_, ok := errs.AsValidation(err)
		assert.True(t, ok)
		assert.Zero(t, f.gateway.verifyCalls)
		assert.Zero(t, f.appRepo.saveCalls)
	})

	t.Run("unknown user aborts before loan-type lookup", func(t *testing.T) {
		f := newGenerateFixture()
		f.gateway.verifyFunc = func(_ context.Context, _, _ string) (bool, error) {
			return false, nil
		}

		_, err := f.uc.Execute(context.Background(), validSubmission())

		require.Error(t, err)
		ve, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "User", ve.Field)
		assert.Zero(t, f.loanTypes.findCalls)
		assert.Zero(t, f.appRepo.saveCalls)
	})

	t.Run("gateway failure propagates unchanged", func(t *testing.T) {
		f := newGenerateFixture()
		f.gateway.verifyFunc = func(_ context.Context, _, _ string) (bool, error) {
			return false, errGatewayDown
		}

		_, err := f.uc.Execute(context.Background(), validSubmission())

		require.ErrorIs(t, err, errGatewayDown)
		_, ok := errs.AsValidation(err)
		assert.False(t, ok)
		assert.Zero(t, f.appRepo.saveCalls)
	})

	t.Run("absent loan type is a configuration error and stops the pipeline", func(t *testing.T) {
		f := newGenerateFixture()
		f.loanTypes.findByIDFunc = func(_ context.Context, _ int64) (*model.LoanType, error) {
			return nil, nil
		}

		_, err := f.uc.Execute(context.Background(), validSubmission())

		require.Error(t, err)
		_, ok := errs.AsConfiguration(err)
		assert.True(t, ok)
		assert.Zero(t, f.states.findCalls)
		assert.Zero(t, f.appRepo.saveCalls)
	})

	t.Run("amount outside loan-type bounds aborts before state lookup", func(t *testing.T) {
		f := newGenerateFixture()
		f.loanTypes.findByIDFunc = func(_ context.Context, id int64) (*model.LoanType, error) {
			return &model.LoanType{
				ID:        id,
				AmountMin: testutil.Amount("1000"),
				AmountMax: testutil.Amount("5000"),
			}, nil
		}
		app := validSubmission()
		app.Amount = testutil.Amount("999")

		_, err := f.uc.Execute(context.Background(), app)

		require.Error(t, err)
		ve, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "amount", ve.Field)
		assert.Contains(t, ve.Message, "1000")
		assert.Contains(t, ve.Message, "5000")
		assert.Zero(t, f.states.findCalls)
		assert.Zero(t, f.appRepo.saveCalls)
	})

	t.Run("absent PEN state is a configuration error and nothing is saved", func(t *testing.T) {
		f := newGenerateFixture()
		f.states.findByCodeFunc = func(_ context.Context, _ string) (*model.State, error) {
			return nil, nil
		}

		_, err := f.uc.Execute(context.Background(), validSubmission())

		require.Error(t, err)
		ce, ok := errs.AsConfiguration(err)
		require.True(t, ok)
		assert.Contains(t, ce.Message, model.StateCodePending)
		assert.Zero(t, f.appRepo.saveCalls)
	})

	t.Run("repository save failure propagates", func(t *testing.T) {
		f := newGenerateFixture()
		f.appRepo.saveFunc = func(_ context.Context, _ *model.Application) (*model.Application, error) {
			return nil, fmt.Errorf("database unavailable")
		}

		_, err := f.uc.Execute(context.Background(), validSubmission())

		testutil.AssertErrorContains(t, err, "save application")
	})

	t.Run("publish failure does not fail the submission", func(t *testing.T) {
		f := newGenerateFixture()
		published := false
		f.publisher.publishFunc = func(_ context.Context, _ ...domainEvent) error {
			published = true
			return fmt.Errorf("kafka unavailable")
		}

		saved, err := f.uc.Execute(context.Background(), validSubmission())

		require.NoError(t, err)
		assert.NotZero(t, saved.ID)
		assert.True(t, published)
	})
}
