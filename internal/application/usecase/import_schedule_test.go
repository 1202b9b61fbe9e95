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

func TestImportSchedule_Execute(t *testing.T) {
	t.Run("creates a loan from locale-formatted rows", func(t *testing.T) {
		repo := &mockLoanAccountRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewImportScheduleUseCase(repo, publisher)

		resp, err := uc.Execute(context.Background(), dto.ImportScheduleRequest{
			OwnerID:  "owner-1",
			Kind:     "INSTALLMENT",
			Currency: "USD",
			Rows: []dto.ImportedRow{
				{Period: "1", Installment: "1.234,56", Interest: "834,56", Principal: "400,00", Balance: "99.600,00"},
				{Period: "2", Installment: "1.234,56", Interest: "831,22", Principal: "403,34", Balance: "99.196,66"},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "UNKNOWN", resp.RateSource)
		assert.Equal(t, "IMPORTED", resp.ScheduleSource)
		assert.Equal(t, 2, resp.TermMonths)
		assert.True(t, resp.OriginalPrincipal.Equal(decimal.NewFromInt(100000)),
			"opening balance %s", resp.OriginalPrincipal)
		assert.True(t, resp.CurrentInstallment.Equal(decimal.RequireFromString("1234.56")))

		require.NotNil(t, repo.savedLoan)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "loan.schedule.imported", publisher.publishedEvents[0].EventType())
	})

	t.Run("fails on empty table", func(t *testing.T) {
		uc := usecase.NewImportScheduleUseCase(&mockLoanAccountRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.ImportScheduleRequest{
			OwnerID:  "owner-1",
			Kind:     "INSTALLMENT",
			Currency: "USD",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no rows")
	})

	t.Run("fails when the first row cannot anchor a loan", func(t *testing.T) {
		uc := usecase.NewImportScheduleUseCase(&mockLoanAccountRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.ImportScheduleRequest{
			OwnerID:  "owner-1",
			Kind:     "INSTALLMENT",
			Currency: "USD",
			Rows: []dto.ImportedRow{
				{Period: "1", Installment: "0", Principal: "0", Balance: "0"},
			},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid schedule input")
	})
}
