package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/domain/model"
	"github.com/finhogar/loan-engine/internal/domain/port"
	"github.com/finhogar/loan-engine/internal/domain/valueobject"
)

// SimulatePrepaymentUseCase previews the effect of an extra principal payment
// without mutating any state. It supports a simulate-before-commit flow at
// the boundary.
type SimulatePrepaymentUseCase struct {
	loanRepo port.LoanAccountRepository
}

// NewSimulatePrepaymentUseCase wires dependencies.
func NewSimulatePrepaymentUseCase(loanRepo port.LoanAccountRepository) *SimulatePrepaymentUseCase {
	return &SimulatePrepaymentUseCase{loanRepo: loanRepo}
}

// Execute runs the simulation. A reduce-term request that cannot amortize at
// the current rate and balance is reported as not applicable, not as an error.
func (uc *SimulatePrepaymentUseCase) Execute(
	ctx context.Context,
	req dto.SimulatePrepaymentRequest,
) (dto.PrepaymentPreviewResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.OwnerID, req.LoanID)
	if err != nil {
		return dto.PrepaymentPreviewResponse{}, fmt.Errorf("find loan: %w", err)
	}

	policy, err := valueobject.NewPrepaymentPolicy(req.Policy)
	if err != nil {
		return dto.PrepaymentPreviewResponse{}, fmt.Errorf("parse policy: %w", err)
	}

	preview, err := loan.SimulatePrepayment(req.ExtraAmount, policy, req.ReferenceAnnualRatePercent)
	if errors.Is(err, model.ErrPrepaymentNotApplicable) {
		return dto.PrepaymentPreviewResponse{
			LoanID:     loan.ID(),
			Applicable: false,
			Reason:     err.Error(),
			Policy:     policy.String(),
		}, nil
	}
	if err != nil {
		return dto.PrepaymentPreviewResponse{}, fmt.Errorf("simulate prepayment: %w", err)
	}

	return dto.PrepaymentPreviewResponse{
		LoanID:            loan.ID(),
		Applicable:        true,
		Policy:            preview.Policy.String(),
		NewOutstanding:    preview.NewOutstanding,
		OldInstallment:    preview.OldInstallment,
		NewInstallment:    preview.NewInstallment,
		OldTermMonths:     preview.OldTermMonths,
		NewTermMonths:     preview.NewTermMonths,
		InterestSaved:     preview.InterestSaved,
		AnnualRatePercent: preview.AnnualRatePercent,
	}, nil
}
