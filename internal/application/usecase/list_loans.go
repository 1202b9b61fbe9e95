package usecase

import (
	"context"
	"fmt"

	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/domain/port"
)

// ListLoansUseCase retrieves all loan accounts of one owner.
type ListLoansUseCase struct {
	loanRepo port.LoanAccountRepository
}

// NewListLoansUseCase wires dependencies.
func NewListLoansUseCase(loanRepo port.LoanAccountRepository) *ListLoansUseCase {
	return &ListLoansUseCase{loanRepo: loanRepo}
}

// Execute returns the owner's loans, newest first.
func (uc *ListLoansUseCase) Execute(
	ctx context.Context,
	req dto.ListLoansRequest,
) (dto.ListLoansResponse, error) {
	loans, err := uc.loanRepo.FindByOwnerID(ctx, req.OwnerID)
	if err != nil {
		return dto.ListLoansResponse{}, fmt.Errorf("find loans: %w", err)
	}

	resp := dto.ListLoansResponse{Loans: make([]dto.LoanResponse, 0, len(loans))}
	for _, loan := range loans {
		resp.Loans = append(resp.Loans, toLoanResponse(loan))
	}
	return resp, nil
}
