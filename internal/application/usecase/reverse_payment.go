package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/domain/port"
)

// ReversePaymentUseCase deletes a recorded payment and restores the loan's
// balances.
type ReversePaymentUseCase struct {
	loanRepo  port.LoanAccountRepository
	publisher port.EventPublisher
}

// NewReversePaymentUseCase wires dependencies.
func NewReversePaymentUseCase(
	loanRepo port.LoanAccountRepository,
	publisher port.EventPublisher,
) *ReversePaymentUseCase {
	return &ReversePaymentUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute reverses the identified payment.
func (uc *ReversePaymentUseCase) Execute(
	ctx context.Context,
	req dto.ReversePaymentRequest,
) (dto.ReversePaymentResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.OwnerID, req.LoanID)
	if err != nil {
		return dto.ReversePaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	loan, err = loan.ReversePayment(req.PaymentID, now)
	if err != nil {
		return dto.ReversePaymentResponse{}, fmt.Errorf("reverse payment: %w", err)
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.ReversePaymentResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.ReversePaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.ReversePaymentResponse{
		LoanID:               loan.ID(),
		OutstandingPrincipal: loan.OutstandingPrincipal(),
		RemainingPeriods:     loan.RemainingPeriods(),
	}, nil
}
