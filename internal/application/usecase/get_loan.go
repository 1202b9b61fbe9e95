package usecase

import (
	"context"
	"fmt"

	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/domain/port"
)

// GetLoanUseCase retrieves a loan account by ID.
type GetLoanUseCase struct {
	loanRepo port.LoanAccountRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loanRepo port.LoanAccountRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loanRepo: loanRepo}
}

// Execute returns a loan response for the given ID.
func (uc *GetLoanUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.LoanResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.OwnerID, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	return toLoanResponse(loan), nil
}
