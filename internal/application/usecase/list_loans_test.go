package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/application/usecase"
	"github.com/finhogar/loan-engine/internal/domain/model"
)

func TestListLoans_Execute(t *testing.T) {
	t.Run("returns every loan of the owner", func(t *testing.T) {
		first := standardLoan(t)
		second := standardLoan(t)
		repo := &mockLoanAccountRepository{
			findByOwnerIDFunc: func(_ context.Context, ownerID string) ([]model.LoanAccount, error) {
				assert.Equal(t, "owner-1", ownerID)
				return []model.LoanAccount{first, second}, nil
			},
		}
		uc := usecase.NewListLoansUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.ListLoansRequest{OwnerID: "owner-1"})
		require.NoError(t, err)

		require.Len(t, resp.Loans, 2)
		assert.Equal(t, first.ID(), resp.Loans[0].ID)
		assert.Equal(t, second.ID(), resp.Loans[1].ID)
		assert.Len(t, resp.Loans[0].Schedule, 12)
	})

	t.Run("returns an empty list for an owner with no loans", func(t *testing.T) {
		uc := usecase.NewListLoansUseCase(&mockLoanAccountRepository{})

		resp, err := uc.Execute(context.Background(), dto.ListLoansRequest{OwnerID: "owner-2"})
		require.NoError(t, err)
		assert.Empty(t, resp.Loans)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repoErr := errors.New("connection reset")
		repo := &mockLoanAccountRepository{
			findByOwnerIDFunc: func(context.Context, string) ([]model.LoanAccount, error) {
				return nil, repoErr
			},
		}
		uc := usecase.NewListLoansUseCase(repo)

		_, err := uc.Execute(context.Background(), dto.ListLoansRequest{OwnerID: "owner-1"})
		assert.ErrorIs(t, err, repoErr)
	})
}
