package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crediya/loan-service/internal/domain/errs"
	"github.com/crediya/loan-service/internal/domain/event"
	"github.com/crediya/loan-service/internal/domain/model"
	"github.com/crediya/loan-service/internal/domain/port"
	"github.com/crediya/loan-service/internal/domain/validation"
)

// GenerateRequestUseCase orchestrates the end-to-end submission pipeline for
// a new loan application: in-memory validation, applicant verification,
// loan-type bounds check, initial-state resolution and persistence.
type GenerateRequestUseCase struct {
	appRepo      port.ApplicationRepository
	statesRepo   port.StatesRepository
	loanTypeRepo port.LoanTypeRepository
	verifyUser   *VerifyUserUseCase
	publisher    port.EventPublisher
	logger       *slog.Logger
}

// NewGenerateRequestUseCase wires dependencies.
func NewGenerateRequestUseCase(
	appRepo port.ApplicationRepository,
	statesRepo port.StatesRepository,
	loanTypeRepo port.LoanTypeRepository,
	verifyUser *VerifyUserUseCase,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *GenerateRequestUseCase {
	return &GenerateRequestUseCase{
		appRepo:      appRepo,
		statesRepo:   statesRepo,
		loanTypeRepo: loanTypeRepo,
		verifyUser:   verifyUser,
		publisher:    publisher,
		logger:       logger,
	}
}

// Execute runs the submission pipeline. Each step short-circuits the rest on
// failure; steps 1-5 perform no writes, so a failure anywhere leaves no
// partial state. The returned application carries the generated id and the
// assigned initial state.
func (uc *GenerateRequestUseCase) Execute(ctx context.Context, a *model.Application) (*model.Application, error) {
	// 1. Validate and normalize in memory. No collaborator is touched when
	// this fails.
	if err := validation.ValidateAndNormalize(a); err != nil {
		return nil, err
	}

	// 2. Verify the applicant against the user-management service.
	if err := uc.verifyUser.Execute(ctx, a.IdentityDocument, a.Email); err != nil {
		return nil, err
	}

	// 3. Resolve the loan type. Absence is a data problem, not user input.
	loanType, err := uc.loanTypeRepo.FindByID(ctx, a.LoanTypeID)
	if err != nil {
		return nil, fmt.Errorf("find loan type: %w", err)
	}
	if loanType == nil {
		return nil, errs.NewConfiguration(errs.MsgLoanTypeNotExist)
	}

	// 4. Check the amount against the loan type's bounds.
	if err := validation.ValidateAmount(a, loanType); err != nil {
		return nil, err
	}

	// 5. Resolve the default initial state.
	state, err := uc.statesRepo.FindByCode(ctx, model.StateCodePending)
	if err != nil {
		return nil, fmt.Errorf("find state: %w", err)
	}
	if state == nil {
		return nil, errs.NewConfiguration(errs.StateNotFound(model.StateCodePending))
	}

	// 6. Assign the state and persist. This is the pipeline's only write.
	a.StateID = state.ID
	saved, err := uc.appRepo.Save(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("save application: %w", err)
	}

	uc.logger.InfoContext(ctx, "loan application created",
		"application_id", saved.ID,
		"state", state.Code,
		"loan_type_id", saved.LoanTypeID,
	)

	// Best-effort notification; the application is already persisted and
	// the submission result must not depend on the broker.
	evt := event.NewApplicationSubmitted(
		saved.ID, saved.Email, saved.IdentityDocument,
		saved.Amount, saved.Term, saved.StateID, saved.LoanTypeID,
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.WarnContext(ctx, "publish application submitted event failed",
			"application_id", saved.ID, "error", err)
	}

	return saved, nil
}
