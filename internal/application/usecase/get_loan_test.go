package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/application/usecase"
	"github.com/finhogar/loan-engine/internal/domain/model"
)

func TestGetLoan_Execute(t *testing.T) {
	t.Run("returns the loan with schedule and histories", func(t *testing.T) {
		loan := standardLoan(t)
		_, loan, err := loan.RecordPayment(fixedNow)
		require.NoError(t, err)

		uc := usecase.NewGetLoanUseCase(repoReturning(loan))

		resp, err := uc.Execute(context.Background(), dto.GetLoanRequest{
			OwnerID: "owner-1",
			LoanID:  loan.ID(),
		})
		require.NoError(t, err)

		assert.Equal(t, loan.ID(), resp.ID)
		assert.Len(t, resp.Schedule, 12)
		assert.Len(t, resp.Payments, 1)
		assert.Equal(t, 11, resp.RemainingPeriods)
	})

	t.Run("fails when the loan does not exist", func(t *testing.T) {
		uc := usecase.NewGetLoanUseCase(&mockLoanAccountRepository{})

		_, err := uc.Execute(context.Background(), dto.GetLoanRequest{
			OwnerID: "owner-1",
			LoanID:  "missing",
		})
		assert.ErrorIs(t, err, model.ErrLoanNotFound)
	})
}

func TestClearLoan_Execute(t *testing.T) {
	loan := standardLoan(t)
	repo := repoReturning(loan)
	publisher := &mockEventPublisher{}
	uc := usecase.NewClearLoanUseCase(repo, publisher)

	resp, err := uc.Execute(context.Background(), dto.ClearLoanRequest{
		OwnerID: "owner-1",
		LoanID:  loan.ID(),
	})
	require.NoError(t, err)

	assert.True(t, resp.OutstandingPrincipal.IsZero())
	assert.Equal(t, 0, resp.RemainingPeriods)
	assert.Empty(t, resp.Schedule)

	require.NotNil(t, repo.savedLoan)
	require.Len(t, publisher.publishedEvents, 1)
	assert.Equal(t, "loan.cleared", publisher.publishedEvents[0].EventType())
}
