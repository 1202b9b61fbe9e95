package event

import (
	"github.com/shopspring/decimal"

	"github.com/finhogar/loan-engine/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const aggregateType = "LoanAccount"

// ---------------------------------------------------------------------------
// Schedule events
// ---------------------------------------------------------------------------

// ScheduleGenerated is raised when a loan is set up from manual parameters
// and its amortization table is synthesized.
type ScheduleGenerated struct {
	events.BaseEvent
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	Installment       decimal.Decimal `json:"installment"`
	Currency          string          `json:"currency"`
	TermMonths        int             `json:"term_months"`
}

func NewScheduleGenerated(
	loanID, ownerID string,
	principal, annualRatePercent, installment decimal.Decimal,
	currency string, termMonths int,
) ScheduleGenerated {
	return ScheduleGenerated{
		BaseEvent:         events.NewBaseEvent("loan.schedule.generated", loanID, aggregateType, ownerID),
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		Installment:       installment,
		Currency:          currency,
		TermMonths:        termMonths,
	}
}

// ScheduleImported is raised when a loan is created from an externally
// parsed amortization table.
type ScheduleImported struct {
	events.BaseEvent
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Installment    decimal.Decimal `json:"installment"`
	Currency       string          `json:"currency"`
	Periods        int             `json:"periods"`
}

func NewScheduleImported(
	loanID, ownerID string,
	openingBalance, installment decimal.Decimal,
	currency string, periods int,
) ScheduleImported {
	return ScheduleImported{
		BaseEvent:      events.NewBaseEvent("loan.schedule.imported", loanID, aggregateType, ownerID),
		OpeningBalance: openingBalance,
		Installment:    installment,
		Currency:       currency,
		Periods:        periods,
	}
}

// ---------------------------------------------------------------------------
// Ledger events
// ---------------------------------------------------------------------------

// PaymentRecorded is raised when a scheduled payment is marked as paid.
type PaymentRecorded struct {
	events.BaseEvent
	PaymentID    string          `json:"payment_id"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Period       int             `json:"period"`
}

func NewPaymentRecorded(
	loanID, ownerID, paymentID string,
	amount, balanceAfter decimal.Decimal,
	period int,
) PaymentRecorded {
	return PaymentRecorded{
		BaseEvent:    events.NewBaseEvent("loan.payment.recorded", loanID, aggregateType, ownerID),
		PaymentID:    paymentID,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Period:       period,
	}
}

// PaymentReversed is raised when a recorded payment is deleted and its
// effect on the balances undone.
type PaymentReversed struct {
	events.BaseEvent
	PaymentID       string          `json:"payment_id"`
	Amount          decimal.Decimal `json:"amount"`
	RestoredBalance decimal.Decimal `json:"restored_balance"`
	Period          int             `json:"period"`
}

func NewPaymentReversed(
	loanID, ownerID, paymentID string,
	amount, restoredBalance decimal.Decimal,
	period int,
) PaymentReversed {
	return PaymentReversed{
		BaseEvent:       events.NewBaseEvent("loan.payment.reversed", loanID, aggregateType, ownerID),
		PaymentID:       paymentID,
		Amount:          amount,
		RestoredBalance: restoredBalance,
		Period:          period,
	}
}

// ---------------------------------------------------------------------------
// Prepayment events
// ---------------------------------------------------------------------------

// PrepaymentApplied is raised when an extra principal payment is committed.
type PrepaymentApplied struct {
	events.BaseEvent
	PrepaymentID   string          `json:"prepayment_id"`
	Amount         decimal.Decimal `json:"amount"`
	Policy         string          `json:"policy"`
	InterestSaved  decimal.Decimal `json:"interest_saved"`
	NewOutstanding decimal.Decimal `json:"new_outstanding"`
}

func NewPrepaymentApplied(
	loanID, ownerID, prepaymentID string,
	amount decimal.Decimal, policy string,
	interestSaved, newOutstanding decimal.Decimal,
) PrepaymentApplied {
	return PrepaymentApplied{
		BaseEvent:      events.NewBaseEvent("loan.prepayment.applied", loanID, aggregateType, ownerID),
		PrepaymentID:   prepaymentID,
		Amount:         amount,
		Policy:         policy,
		InterestSaved:  interestSaved,
		NewOutstanding: newOutstanding,
	}
}

// LoanCleared is raised when a loan's balances and histories are reset.
type LoanCleared struct {
	events.BaseEvent
}

func NewLoanCleared(loanID, ownerID string) LoanCleared {
	return LoanCleared{
		BaseEvent: events.NewBaseEvent("loan.cleared", loanID, aggregateType, ownerID),
	}
}
