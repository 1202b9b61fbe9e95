package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/domain/model"
	"github.com/finhogar/loan-engine/internal/domain/port"
	"github.com/finhogar/loan-engine/internal/domain/valueobject"
)

// SetupLoanUseCase creates a loan account from manual setup parameters and
// generates its amortization schedule.
type SetupLoanUseCase struct {
	loanRepo  port.LoanAccountRepository
	publisher port.EventPublisher
}

// NewSetupLoanUseCase wires dependencies.
func NewSetupLoanUseCase(
	loanRepo port.LoanAccountRepository,
	publisher port.EventPublisher,
) *SetupLoanUseCase {
	return &SetupLoanUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute creates and persists a new loan account.
func (uc *SetupLoanUseCase) Execute(
	ctx context.Context,
	req dto.SetupLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	kind, err := valueobject.NewLoanKind(req.Kind)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("parse loan kind: %w", err)
	}

	loan, err := model.NewLoanAccount(
		req.OwnerID, kind, req.Currency,
		req.Principal, req.AnnualRatePercent,
		req.TermMonths, req.MonthlyInsurance,
		now,
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create loan: %w", err)
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan), nil
}
