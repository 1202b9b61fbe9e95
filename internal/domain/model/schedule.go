package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dueDateLayout = "2006-01-02"

// ScheduleRow is an immutable value object representing one period in an
// amortization table. Installment = interest + principal + insurance for
// every row; Balance is the outstanding principal after the period.
type ScheduleRow struct {
	DueDate     string
	Installment decimal.Decimal
	Interest    decimal.Decimal
	Principal   decimal.Decimal
	Insurance   decimal.Decimal
	Balance     decimal.Decimal
	Period      int
}

// RawScheduleRow is one externally parsed row of an imported amortization
// table. Numeric cells may be locale-formatted strings (thousands separators,
// comma or dot decimal marks).
type RawScheduleRow struct {
	Period      string
	DueDate     string
	Installment string
	Interest    string
	Principal   string
	Insurance   string
	Balance     string
}

// MonthlyRate converts an effective annual rate in percent to the equivalent
// monthly compounding rate:
//
//	r = (1 + annual/100)^(1/12) - 1
//
// The twelfth root is taken in float64, monetary arithmetic stays in decimal.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	if annualRatePercent.IsZero() {
		return decimal.Zero
	}
	annual := annualRatePercent.InexactFloat64() / 100.0
	return decimal.NewFromFloat(math.Pow(1+annual, 1.0/12.0) - 1)
}

// FixedPayment computes the constant periodic payment of a French
// amortization over n periods at monthly rate r:
//
//	C = P * r * (1+r)^n / ((1+r)^n - 1)
//
// At r = 0 the payment is an even split of the principal. The result is not
// rounded; rounding happens at schedule-row emission.
func FixedPayment(principal, monthlyRate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.Zero
	}
	if monthlyRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(periods)))
	}

	factor := decimal.NewFromFloat(
		math.Pow(monthlyRate.Add(decimal.New(1, 0)).InexactFloat64(), float64(periods)),
	)
	return principal.Mul(monthlyRate).Mul(factor).Div(factor.Sub(decimal.New(1, 0)))
}

// GenerateSchedule computes a fixed-payment amortization table for the given
// terms. Each row's installment carries the monthly insurance on top of the
// amortizing payment. The final balance is clamped to exactly zero to absorb
// rounding drift.
func GenerateSchedule(
	principal, annualRatePercent decimal.Decimal,
	termMonths int,
	monthlyInsurance decimal.Decimal,
	startDate time.Time,
) ([]ScheduleRow, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: principal %s must be positive", ErrInvalidScheduleInput, principal)
	}
	if termMonths <= 0 {
		return nil, fmt.Errorf("%w: term %d months must be positive", ErrInvalidScheduleInput, termMonths)
	}
	if annualRatePercent.IsNegative() {
		return nil, fmt.Errorf("%w: annual rate %s%% must not be negative", ErrInvalidScheduleInput, annualRatePercent)
	}

	rate := MonthlyRate(annualRatePercent)
	payment := FixedPayment(principal, rate, termMonths).Round(2)
	insurance := monthlyInsurance.Round(2)

	schedule := make([]ScheduleRow, 0, termMonths)
	remaining := principal

	for period := 1; period <= termMonths; period++ {
		interest := remaining.Mul(rate).Round(2)
		principalPart := payment.Sub(interest)

		// Last period: absorb rounding drift so the balance lands on zero.
		if period == termMonths {
			principalPart = remaining
			payment = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		var due string
		if !startDate.IsZero() {
			due = startDate.AddDate(0, period, 0).Format(dueDateLayout)
		}

		schedule = append(schedule, ScheduleRow{
			Period:      period,
			DueDate:     due,
			Installment: payment.Add(insurance),
			Interest:    interest,
			Principal:   principalPart,
			Insurance:   insurance,
			Balance:     remaining,
		})
	}

	return schedule, nil
}

// NormalizeImportedSchedule coerces externally parsed rows into schedule rows.
// Unparsable numeric cells default to zero. The first row must reconstruct a
// positive opening balance (balance + principal portion) and carry a positive
// installment, otherwise the table cannot anchor a loan.
func NormalizeImportedSchedule(rows []RawScheduleRow) ([]ScheduleRow, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySchedule
	}

	schedule := make([]ScheduleRow, 0, len(rows))
	for i, raw := range rows {
		period := parsePeriod(raw.Period, i+1)
		schedule = append(schedule, ScheduleRow{
			Period:      period,
			DueDate:     strings.TrimSpace(raw.DueDate),
			Installment: parseAmount(raw.Installment),
			Interest:    parseAmount(raw.Interest),
			Principal:   parseAmount(raw.Principal),
			Insurance:   parseAmount(raw.Insurance),
			Balance:     parseAmount(raw.Balance),
		})
	}

	first := schedule[0]
	opening := first.Balance.Add(first.Principal)
	if opening.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: first row reconstructs opening balance %s", ErrInvalidScheduleInput, opening)
	}
	if first.Installment.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: first row installment %s", ErrInvalidScheduleInput, first.Installment)
	}

	return schedule, nil
}

func parsePeriod(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// parseAmount coerces a locale-formatted numeric cell to a decimal. Thousands
// separators are stripped; a lone comma followed by at most two digits is
// treated as a decimal mark. Unparsable input yields zero.
func parseAmount(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero
	}

	dot := strings.LastIndex(cleaned, ".")
	comma := strings.LastIndex(cleaned, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if dot > comma {
			// 1,234.56
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		} else {
			// 1.234,56
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		}
	case comma >= 0:
		if strings.Count(cleaned, ",") == 1 && len(cleaned)-comma-1 <= 2 {
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
