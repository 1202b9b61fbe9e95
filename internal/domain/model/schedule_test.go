package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhogar/loan-engine/internal/domain/model"
)

func TestMonthlyRate_TwelvePercentAnnual(t *testing.T) {
	// (1.12)^(1/12) - 1 ≈ 0.0094888
	r := model.MonthlyRate(decimal.NewFromInt(12))
	assert.InDelta(t, 0.0094888, r.InexactFloat64(), 0.0000005)
}

func TestMonthlyRate_Zero(t *testing.T) {
	assert.True(t, model.MonthlyRate(decimal.Zero).IsZero())
}

func TestFixedPayment_ZeroRateSplitsEvenly(t *testing.T) {
	payment := model.FixedPayment(decimal.NewFromInt(1200), decimal.Zero, 12)
	assert.True(t, payment.Equal(decimal.NewFromInt(100)), "got %s", payment)
}

func TestFixedPayment_NoPeriods(t *testing.T) {
	assert.True(t, model.FixedPayment(decimal.NewFromInt(1000), decimal.Zero, 0).IsZero())
}

func TestGenerateSchedule_StandardLoan(t *testing.T) {
	// 100,000 at 12% effective annual over 12 months.
	schedule, err := model.GenerateSchedule(
		decimal.NewFromInt(100000), decimal.NewFromInt(12), 12, decimal.Zero, time.Time{},
	)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	first := schedule[0]
	assert.True(t, first.Installment.Equal(decimal.RequireFromString("8856.21")),
		"first installment %s", first.Installment)
	assert.True(t, first.Interest.Equal(decimal.RequireFromString("948.88")),
		"first interest %s", first.Interest)
	assert.True(t, first.Balance.Equal(decimal.RequireFromString("92092.67")),
		"first balance %s", first.Balance)

	assert.True(t, schedule[11].Balance.IsZero(), "final balance %s", schedule[11].Balance)
}

func TestGenerateSchedule_RowsBalance(t *testing.T) {
	schedule, err := model.GenerateSchedule(
		decimal.NewFromInt(100000), decimal.NewFromInt(12), 12, decimal.NewFromInt(25), time.Time{},
	)
	require.NoError(t, err)

	totalPrincipal := decimal.Zero
	prevBalance := decimal.NewFromInt(100000)
	prevInterest := schedule[0].Interest.Add(decimal.NewFromInt(1))
	for _, row := range schedule {
		sum := row.Interest.Add(row.Principal).Add(row.Insurance)
		assert.True(t, row.Installment.Equal(sum),
			"period %d: installment %s != interest+principal+insurance %s", row.Period, row.Installment, sum)

		assert.True(t, row.Balance.LessThan(prevBalance),
			"period %d: balance %s did not decrease from %s", row.Period, row.Balance, prevBalance)
		assert.True(t, row.Interest.LessThan(prevInterest),
			"period %d: interest %s did not decrease from %s", row.Period, row.Interest, prevInterest)

		totalPrincipal = totalPrincipal.Add(row.Principal)
		prevBalance = row.Balance
		prevInterest = row.Interest
	}

	assert.True(t, totalPrincipal.Equal(decimal.NewFromInt(100000)),
		"principal portions sum to %s", totalPrincipal)
}

func TestGenerateSchedule_ZeroRate(t *testing.T) {
	schedule, err := model.GenerateSchedule(
		decimal.NewFromInt(1200), decimal.Zero, 12, decimal.Zero, time.Time{},
	)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	for _, row := range schedule {
		assert.True(t, row.Interest.IsZero(), "period %d interest %s", row.Period, row.Interest)
		assert.True(t, row.Installment.Equal(decimal.NewFromInt(100)),
			"period %d installment %s", row.Period, row.Installment)
	}
	assert.True(t, schedule[11].Balance.IsZero())
}

func TestGenerateSchedule_DueDates(t *testing.T) {
	start := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	schedule, err := model.GenerateSchedule(
		decimal.NewFromInt(10000), decimal.NewFromInt(10), 3, decimal.Zero, start,
	)
	require.NoError(t, err)

	assert.Equal(t, "2026-02-15", schedule[0].DueDate)
	assert.Equal(t, "2026-03-15", schedule[1].DueDate)
	assert.Equal(t, "2026-04-15", schedule[2].DueDate)
}

func TestGenerateSchedule_InvalidInputs(t *testing.T) {
	_, err := model.GenerateSchedule(decimal.Zero, decimal.NewFromInt(12), 12, decimal.Zero, time.Time{})
	assert.ErrorIs(t, err, model.ErrInvalidScheduleInput)

	_, err = model.GenerateSchedule(decimal.NewFromInt(-100), decimal.NewFromInt(12), 12, decimal.Zero, time.Time{})
	assert.ErrorIs(t, err, model.ErrInvalidScheduleInput)

	_, err = model.GenerateSchedule(decimal.NewFromInt(100000), decimal.NewFromInt(12), 0, decimal.Zero, time.Time{})
	assert.ErrorIs(t, err, model.ErrInvalidScheduleInput)

	_, err = model.GenerateSchedule(decimal.NewFromInt(100000), decimal.NewFromInt(-1), 12, decimal.Zero, time.Time{})
	assert.ErrorIs(t, err, model.ErrInvalidScheduleInput)
}

func TestNormalizeImportedSchedule_LocaleFormats(t *testing.T) {
	rows := []model.RawScheduleRow{
		{
			Period:      "1",
			DueDate:     " 2026-02-01 ",
			Installment: "$ 1.234,56",
			Interest:    "834,56",
			Principal:   "400,00",
			Insurance:   "",
			Balance:     "99.600,00",
		},
		{
			Period:      "2",
			Installment: "1,234.56",
			Interest:    "831.22",
			Principal:   "403.34",
			Balance:     "99,196.66",
		},
	}

	schedule, err := model.NormalizeImportedSchedule(rows)
	require.NoError(t, err)
	require.Len(t, schedule, 2)

	assert.Equal(t, "2026-02-01", schedule[0].DueDate)
	assert.True(t, schedule[0].Installment.Equal(decimal.RequireFromString("1234.56")),
		"got %s", schedule[0].Installment)
	assert.True(t, schedule[0].Balance.Equal(decimal.NewFromInt(99600)),
		"got %s", schedule[0].Balance)
	assert.True(t, schedule[0].Insurance.IsZero())

	assert.True(t, schedule[1].Installment.Equal(decimal.RequireFromString("1234.56")),
		"got %s", schedule[1].Installment)
	assert.True(t, schedule[1].Balance.Equal(decimal.RequireFromString("99196.66")),
		"got %s", schedule[1].Balance)
}

func TestNormalizeImportedSchedule_UnparsableCellsDefaultToZero(t *testing.T) {
	rows := []model.RawScheduleRow{
		{Period: "1", Installment: "500,00", Interest: "n/a", Principal: "400", Balance: "9.600,00"},
	}

	schedule, err := model.NormalizeImportedSchedule(rows)
	require.NoError(t, err)
	assert.True(t, schedule[0].Interest.IsZero())
	assert.True(t, schedule[0].Balance.Equal(decimal.NewFromInt(9600)), "got %s", schedule[0].Balance)
}

func TestNormalizeImportedSchedule_PeriodFallback(t *testing.T) {
	rows := []model.RawScheduleRow{
		{Period: "", Installment: "100", Principal: "90", Balance: "910"},
		{Period: "junk", Installment: "100", Principal: "91", Balance: "819"},
	}

	schedule, err := model.NormalizeImportedSchedule(rows)
	require.NoError(t, err)
	assert.Equal(t, 1, schedule[0].Period)
	assert.Equal(t, 2, schedule[1].Period)
}

func TestNormalizeImportedSchedule_Empty(t *testing.T) {
	_, err := model.NormalizeImportedSchedule(nil)
	assert.ErrorIs(t, err, model.ErrEmptySchedule)
}

func TestNormalizeImportedSchedule_FirstRowCannotAnchorLoan(t *testing.T) {
	// Opening balance reconstructs to zero.
	_, err := model.NormalizeImportedSchedule([]model.RawScheduleRow{
		{Period: "1", Installment: "100", Principal: "0", Balance: "0"},
	})
	assert.ErrorIs(t, err, model.ErrInvalidScheduleInput)

	// No positive installment.
	_, err = model.NormalizeImportedSchedule([]model.RawScheduleRow{
		{Period: "1", Installment: "garbage", Principal: "400", Balance: "9600"},
	})
	assert.ErrorIs(t, err, model.ErrInvalidScheduleInput)
}
