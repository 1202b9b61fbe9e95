package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/domain/port"
)

// ClearLoanUseCase resets a loan's balances, schedule, and histories.
type ClearLoanUseCase struct {
	loanRepo  port.LoanAccountRepository
	publisher port.EventPublisher
}

// NewClearLoanUseCase wires dependencies.
func NewClearLoanUseCase(
	loanRepo port.LoanAccountRepository,
	publisher port.EventPublisher,
) *ClearLoanUseCase {
	return &ClearLoanUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute clears the identified loan. Idempotent.
func (uc *ClearLoanUseCase) Execute(
	ctx context.Context,
	req dto.ClearLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.OwnerID, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	loan = loan.Clear(now)

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan), nil
}
