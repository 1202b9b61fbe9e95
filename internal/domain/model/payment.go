package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finhogar/loan-engine/internal/domain/valueobject"
)

// Payment is a realized, historical payment event. Created only by the
// ledger operations on LoanAccount; immutable once created except via
// explicit reversal.
type Payment struct {
	ID           string
	PaidAt       time.Time
	Amount       decimal.Decimal
	Interest     decimal.Decimal
	Principal    decimal.Decimal
	Insurance    decimal.Decimal
	BalanceAfter decimal.Decimal
	Period       int
}

// Prepayment is a realized extra-principal event. InterestSaved is computed
// at apply time and frozen thereafter.
type Prepayment struct {
	ID                string
	AppliedAt         time.Time
	Amount            decimal.Decimal
	Policy            valueobject.PrepaymentPolicy
	InterestSaved     decimal.Decimal
	AnnualRatePercent decimal.Decimal
}
