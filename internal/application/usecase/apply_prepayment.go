package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/domain/port"
	"github.com/finhogar/loan-engine/internal/domain/valueobject"
)

// ApplyPrepaymentUseCase commits an extra principal payment to a loan.
type ApplyPrepaymentUseCase struct {
	loanRepo  port.LoanAccountRepository
	publisher port.EventPublisher
}

// NewApplyPrepaymentUseCase wires dependencies.
func NewApplyPrepaymentUseCase(
	loanRepo port.LoanAccountRepository,
	publisher port.EventPublisher,
) *ApplyPrepaymentUseCase {
	return &ApplyPrepaymentUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute re-derives the simulation for the request and, when applicable,
// commits it. ErrPrepaymentNotApplicable propagates to the caller.
func (uc *ApplyPrepaymentUseCase) Execute(
	ctx context.Context,
	req dto.ApplyPrepaymentRequest,
) (dto.ApplyPrepaymentResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.OwnerID, req.LoanID)
	if err != nil {
		return dto.ApplyPrepaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	policy, err := valueobject.NewPrepaymentPolicy(req.Policy)
	if err != nil {
		return dto.ApplyPrepaymentResponse{}, fmt.Errorf("parse policy: %w", err)
	}

	prepayment, loan, err := loan.ApplyPrepayment(req.ExtraAmount, policy, req.ReferenceAnnualRatePercent, now)
	if err != nil {
		return dto.ApplyPrepaymentResponse{}, fmt.Errorf("apply prepayment: %w", err)
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.ApplyPrepaymentResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.ApplyPrepaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.ApplyPrepaymentResponse{
		LoanID:                  loan.ID(),
		Prepayment:              toPrepaymentRecord(prepayment),
		OutstandingPrincipal:    loan.OutstandingPrincipal(),
		CurrentInstallment:      loan.CurrentInstallment(),
		RemainingPeriods:        loan.RemainingPeriods(),
		CumulativeInterestSaved: loan.CumulativeInterestSaved(),
	}, nil
}
