package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/crediya/loan-service/internal/domain/model"
	"github.com/crediya/loan-service/internal/domain/port"
)

// GetPendingApplicationsUseCase produces the advisor view of applications:
// filtered, paginated and enriched with applicant name and salary from the
// user directory.
type GetPendingApplicationsUseCase struct {
	appRepo port.ApplicationRepository
	gateway port.UserGateway
	logger  *slog.Logger
}

// NewGetPendingApplicationsUseCase wires dependencies.
func NewGetPendingApplicationsUseCase(
	appRepo port.ApplicationRepository,
	gateway port.UserGateway,
	logger *slog.Logger,
) *GetPendingApplicationsUseCase {
	return &GetPendingApplicationsUseCase{
		appRepo: appRepo,
		gateway: gateway,
		logger:  logger,
	}
}

// Execute normalizes the criteria, loads the applicant directory for this
// call, queries one page of applications and enriches each row. The
// directory is scoped to the invocation: concurrent calls share nothing.
func (uc *GetPendingApplicationsUseCase) Execute(
	ctx context.Context,
	criteria model.PendingCriteria,
) (model.Page[model.PendingRow], error) {
	c := criteria.Normalize()

	users, err := uc.gateway.LoadUsers(ctx)
	if err != nil {
		return model.Page[model.PendingRow]{}, err
	}

	byDocument := make(map[string]model.User, len(users))
	for _, u := range users {
		byDocument[strings.TrimSpace(u.IdentityDocument)] = u
	}
	uc.logger.DebugContext(ctx, "applicant directory loaded", "users", len(byDocument))

	page, err := uc.appRepo.FindPending(ctx, c)
	if err != nil {
		return model.Page[model.PendingRow]{}, err
	}

	for i := range page.Items {
		enrichRow(&page.Items[i], byDocument)
	}
	return page, nil
}

// enrichRow attaches full name and base salary when the applicant has a
// directory profile. A missing profile is not an error for listing purposes.
func enrichRow(row *model.PendingRow, byDocument map[string]model.User) {
	doc := strings.TrimSpace(row.IdentityDocument)
	if doc == "" {
		return
	}
	u, ok := byDocument[doc]
	if !ok {
		return
	}
	row.FullName = strings.TrimSpace(u.FirstName + " " + u.LastName)
	salary := u.BaseSalary
	row.BaseSalary = &salary
}
