package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/domain/model"
	"github.com/finhogar/loan-engine/internal/domain/port"
)

// RecordPaymentUseCase marks the next due period of a loan as paid.
type RecordPaymentUseCase struct {
	loanRepo  port.LoanAccountRepository
	publisher port.EventPublisher
}

// NewRecordPaymentUseCase wires dependencies.
func NewRecordPaymentUseCase(
	loanRepo port.LoanAccountRepository,
	publisher port.EventPublisher,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute records a payment against a loan. A fully paid loan is reported as
// an informational no-op, not an error.
func (uc *RecordPaymentUseCase) Execute(
	ctx context.Context,
	req dto.RecordPaymentRequest,
) (dto.RecordPaymentResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.OwnerID, req.LoanID)
	if err != nil {
		return dto.RecordPaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	payment, loan, err := loan.RecordPayment(now)
	if errors.Is(err, model.ErrLoanFullyPaid) {
		return dto.RecordPaymentResponse{
			LoanID:               loan.ID(),
			OutstandingPrincipal: loan.OutstandingPrincipal(),
			RemainingPeriods:     loan.RemainingPeriods(),
			FullyPaid:            true,
		}, nil
	}
	if err != nil {
		return dto.RecordPaymentResponse{}, fmt.Errorf("record payment: %w", err)
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.RecordPaymentResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.RecordPaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	record := toPaymentRecord(payment)
	return dto.RecordPaymentResponse{
		LoanID:               loan.ID(),
		Payment:              &record,
		OutstandingPrincipal: loan.OutstandingPrincipal(),
		RemainingPeriods:     loan.RemainingPeriods(),
	}, nil
}
