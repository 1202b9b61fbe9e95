package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/application/usecase"
)

func TestSetupLoan_Execute(t *testing.T) {
	t.Run("creates a loan with a generated schedule", func(t *testing.T) {
		repo := &mockLoanAccountRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewSetupLoanUseCase(repo, publisher)

		resp, err := uc.Execute(context.Background(), dto.SetupLoanRequest{
			OwnerID:           "owner-1",
			Kind:              "MORTGAGE",
			Currency:          "USD",
			Principal:         decimal.NewFromInt(100000),
			AnnualRatePercent: decimal.NewFromInt(12),
			TermMonths:        12,
			MonthlyInsurance:  decimal.Zero,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "owner-1", resp.OwnerID)
		assert.Equal(t, "DISCLOSED", resp.RateSource)
		assert.Equal(t, "GENERATED", resp.ScheduleSource)
		assert.Len(t, resp.Schedule, 12)
		assert.True(t, resp.CurrentInstallment.Equal(decimal.RequireFromString("8856.21")),
			"installment %s", resp.CurrentInstallment)

		require.NotNil(t, repo.savedLoan)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "loan.schedule.generated", publisher.publishedEvents[0].EventType())
	})

	t.Run("fails on unknown loan kind", func(t *testing.T) {
		uc := usecase.NewSetupLoanUseCase(&mockLoanAccountRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.SetupLoanRequest{
			OwnerID:           "owner-1",
			Kind:              "CAR",
			Currency:          "USD",
			Principal:         decimal.NewFromInt(1000),
			AnnualRatePercent: decimal.NewFromInt(10),
			TermMonths:        12,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid loan kind")
	})

	t.Run("fails on invalid schedule parameters", func(t *testing.T) {
		uc := usecase.NewSetupLoanUseCase(&mockLoanAccountRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.SetupLoanRequest{
			OwnerID:           "owner-1",
			Kind:              "MORTGAGE",
			Currency:          "USD",
			Principal:         decimal.Zero,
			AnnualRatePercent: decimal.NewFromInt(10),
			TermMonths:        12,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create loan")
	})
}
