package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/application/usecase"
	"github.com/finhogar/loan-engine/internal/domain/model"
	"github.com/finhogar/loan-engine/internal/domain/valueobject"
)

// lowInstallmentLoan cannot amortize under reduce-term at its own rate.
func lowInstallmentLoan() model.LoanAccount {
	return model.ReconstructLoanAccount(
		"loan-1", "owner-1", valueobject.LoanKindMortgage, "USD",
		decimal.NewFromInt(12), valueobject.RateSourceDisclosed,
		decimal.Zero, decimal.NewFromInt(100000), decimal.NewFromInt(100000),
		decimal.NewFromInt(50), decimal.NewFromInt(600), decimal.Zero,
		12, 12,
		nil, valueobject.ScheduleSourceGenerated, nil, nil,
		1, fixedNow, fixedNow,
	)
}

func TestSimulatePrepayment_Execute(t *testing.T) {
	t.Run("returns an applicable reduce-term preview", func(t *testing.T) {
		loan := standardLoan(t)
		uc := usecase.NewSimulatePrepaymentUseCase(repoReturning(loan))

		resp, err := uc.Execute(context.Background(), dto.SimulatePrepaymentRequest{
			OwnerID:     "owner-1",
			LoanID:      loan.ID(),
			ExtraAmount: decimal.NewFromInt(20000),
			Policy:      "REDUCE_TERM",
		})
		require.NoError(t, err)

		assert.True(t, resp.Applicable)
		assert.Empty(t, resp.Reason)
		assert.Equal(t, "REDUCE_TERM", resp.Policy)
		assert.True(t, resp.NewOutstanding.Equal(decimal.NewFromInt(80000)))
		assert.Less(t, resp.NewTermMonths, resp.OldTermMonths)
		assert.True(t, resp.NewInstallment.Equal(resp.OldInstallment))
		assert.True(t, resp.InterestSaved.GreaterThan(decimal.Zero))
	})

	t.Run("reports not-applicable instead of failing", func(t *testing.T) {
		uc := usecase.NewSimulatePrepaymentUseCase(repoReturning(lowInstallmentLoan()))

		resp, err := uc.Execute(context.Background(), dto.SimulatePrepaymentRequest{
			OwnerID:     "owner-1",
			LoanID:      "loan-1",
			ExtraAmount: decimal.NewFromInt(1000),
			Policy:      "REDUCE_TERM",
		})
		require.NoError(t, err)

		assert.False(t, resp.Applicable)
		assert.NotEmpty(t, resp.Reason)
	})

	t.Run("fails on unknown policy", func(t *testing.T) {
		uc := usecase.NewSimulatePrepaymentUseCase(repoReturning(standardLoan(t)))

		_, err := uc.Execute(context.Background(), dto.SimulatePrepaymentRequest{
			OwnerID:     "owner-1",
			LoanID:      "loan-1",
			ExtraAmount: decimal.NewFromInt(1000),
			Policy:      "PAY_LESS",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid prepayment policy")
	})
}

func TestApplyPrepayment_Execute(t *testing.T) {
	t.Run("commits a reduce-installment prepayment", func(t *testing.T) {
		loan := standardLoan(t)
		repo := repoReturning(loan)
		publisher := &mockEventPublisher{}
		uc := usecase.NewApplyPrepaymentUseCase(repo, publisher)

		resp, err := uc.Execute(context.Background(), dto.ApplyPrepaymentRequest{
			OwnerID:     "owner-1",
			LoanID:      loan.ID(),
			ExtraAmount: decimal.NewFromInt(20000),
			Policy:      "REDUCE_INSTALLMENT",
		})
		require.NoError(t, err)

		assert.True(t, resp.OutstandingPrincipal.Equal(decimal.NewFromInt(80000)))
		assert.True(t, resp.CurrentInstallment.Equal(decimal.RequireFromString("7084.97")),
			"installment %s", resp.CurrentInstallment)
		assert.Equal(t, 12, resp.RemainingPeriods)
		assert.True(t, resp.CumulativeInterestSaved.GreaterThan(decimal.Zero))
		assert.Equal(t, "REDUCE_INSTALLMENT", resp.Prepayment.Policy)

		require.NotNil(t, repo.savedLoan)
		assert.Len(t, repo.savedLoan.Prepayments(), 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "loan.prepayment.applied", publisher.publishedEvents[0].EventType())
	})

	t.Run("propagates not-applicable as an error", func(t *testing.T) {
		repo := repoReturning(lowInstallmentLoan())
		uc := usecase.NewApplyPrepaymentUseCase(repo, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.ApplyPrepaymentRequest{
			OwnerID:     "owner-1",
			LoanID:      "loan-1",
			ExtraAmount: decimal.NewFromInt(1000),
			Policy:      "REDUCE_TERM",
		})
		assert.ErrorIs(t, err, model.ErrPrepaymentNotApplicable)
		assert.Nil(t, repo.savedLoan)
	})
}
