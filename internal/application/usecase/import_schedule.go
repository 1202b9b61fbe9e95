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

// ImportScheduleUseCase creates a loan account from an externally parsed
// amortization table.
type ImportScheduleUseCase struct {
	loanRepo  port.LoanAccountRepository
	publisher port.EventPublisher
}

// NewImportScheduleUseCase wires dependencies.
func NewImportScheduleUseCase(
	loanRepo port.LoanAccountRepository,
	publisher port.EventPublisher,
) *ImportScheduleUseCase {
	return &ImportScheduleUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute normalizes the imported rows and persists the resulting loan.
func (uc *ImportScheduleUseCase) Execute(
	ctx context.Context,
	req dto.ImportScheduleRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	kind, err := valueobject.NewLoanKind(req.Kind)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("parse loan kind: %w", err)
	}

	rows := make([]model.RawScheduleRow, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, model.RawScheduleRow{
			Period:      r.Period,
			DueDate:     r.DueDate,
			Installment: r.Installment,
			Interest:    r.Interest,
			Principal:   r.Principal,
			Insurance:   r.Insurance,
			Balance:     r.Balance,
		})
	}

	loan, err := model.NewLoanAccountFromImport(req.OwnerID, kind, req.Currency, rows, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("import schedule: %w", err)
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan), nil
}
