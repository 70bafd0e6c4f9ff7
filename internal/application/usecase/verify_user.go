package usecase

import (
	"context"

	"github.com/crediya/loan-service/internal/domain/errs"
	"github.com/crediya/loan-service/internal/domain/port"
)

// VerifyUserUseCase confirms an applicant's identity-document/email pair is
// recognized by the user-management service.
type VerifyUserUseCase struct {
	gateway port.UserGateway
}

// NewVerifyUserUseCase wires dependencies.
func NewVerifyUserUseCase(gateway port.UserGateway) *VerifyUserUseCase {
	return &VerifyUserUseCase{gateway: gateway}
}

// Execute asks the gateway whether the pair exists. An unrecognized pair is
// a validation failure on the "User" field; gateway-level errors (network,
// timeout) propagate unchanged.
func (uc *VerifyUserUseCase) Execute(ctx context.Context, documentNumber, email string) error {
	exists, err := uc.gateway.Verify(ctx, documentNumber, email)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewValidation("User", errs.MsgUserInvalid)
	}
	return nil
}
