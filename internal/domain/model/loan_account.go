package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finhogar/loan-engine/internal/domain/event"
	"github.com/finhogar/loan-engine/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// LoanAccount aggregate root
// ---------------------------------------------------------------------------

// LoanAccount is an immutable aggregate owning a loan's balances, payment and
// prepayment histories, and amortization table. Mutations return a new copy;
// cross-field invariants (non-negative balance and periods, monotonically
// decreasing outstanding principal) are enforced inside the transitions.
type LoanAccount struct {
	id                      string
	ownerID                 string
	kind                    valueobject.LoanKind
	currency                string
	annualRatePercent       decimal.Decimal
	rateSource              valueobject.RateSource
	monthlyInsurance        decimal.Decimal
	originalPrincipal       decimal.Decimal
	outstandingPrincipal    decimal.Decimal
	currentInstallment      decimal.Decimal
	totalRemainingCost      decimal.Decimal
	cumulativeInterestSaved decimal.Decimal
	termMonths              int
	remainingPeriods        int
	schedule                []ScheduleRow
	scheduleSource          valueobject.ScheduleSource
	payments                []Payment
	prepayments             []Prepayment
	version                 int
	createdAt               time.Time
	updatedAt               time.Time
	domainEvents            []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLoanAccount creates a loan from manual setup parameters and synthesizes
// its amortization schedule. The supplied rate is recorded as disclosed.
func NewLoanAccount(
	ownerID string,
	kind valueobject.LoanKind,
	currency string,
	principal, annualRatePercent decimal.Decimal,
	termMonths int,
	monthlyInsurance decimal.Decimal,
	now time.Time,
) (LoanAccount, error) {
	if ownerID == "" {
		return LoanAccount{}, errors.New("owner ID is required")
	}
	if kind.IsZero() {
		return LoanAccount{}, errors.New("loan kind is required")
	}
	if currency == "" {
		return LoanAccount{}, errors.New("currency is required")
	}
	if monthlyInsurance.IsNegative() {
		return LoanAccount{}, errors.New("monthly insurance must not be negative")
	}

	schedule, err := GenerateSchedule(principal, annualRatePercent, termMonths, monthlyInsurance, now)
	if err != nil {
		return LoanAccount{}, err
	}

	id := uuid.New().String()
	installment := schedule[0].Installment

	loan := LoanAccount{
		id:                   id,
		ownerID:              ownerID,
		kind:                 kind,
		currency:             currency,
		annualRatePercent:    annualRatePercent,
		rateSource:           valueobject.RateSourceDisclosed,
		monthlyInsurance:     monthlyInsurance.Round(2),
		originalPrincipal:    principal,
		outstandingPrincipal: principal,
		currentInstallment:   installment,
		totalRemainingCost:   sumInstallments(schedule),
		termMonths:           termMonths,
		remainingPeriods:     termMonths,
		schedule:             schedule,
		scheduleSource:       valueobject.ScheduleSourceGenerated,
		version:              1,
		createdAt:            now,
		updatedAt:            now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewScheduleGenerated(
		id, ownerID, principal, annualRatePercent, installment, currency, termMonths,
	))

	return loan, nil
}

// NewLoanAccountFromImport creates a loan from an externally parsed
// amortization table. Balances are anchored on the first row; the rate is
// unknown until a reference rate is supplied at prepayment time.
func NewLoanAccountFromImport(
	ownerID string,
	kind valueobject.LoanKind,
	currency string,
	rows []RawScheduleRow,
	now time.Time,
) (LoanAccount, error) {
	if ownerID == "" {
		return LoanAccount{}, errors.New("owner ID is required")
	}
	if kind.IsZero() {
		return LoanAccount{}, errors.New("loan kind is required")
	}
	if currency == "" {
		return LoanAccount{}, errors.New("currency is required")
	}

	schedule, err := NormalizeImportedSchedule(rows)
	if err != nil {
		return LoanAccount{}, err
	}

	id := uuid.New().String()
	first := schedule[0]
	opening := first.Balance.Add(first.Principal)

	loan := LoanAccount{
		id:                   id,
		ownerID:              ownerID,
		kind:                 kind,
		currency:             currency,
		rateSource:           valueobject.RateSourceUnknown,
		monthlyInsurance:     first.Insurance,
		originalPrincipal:    opening,
		outstandingPrincipal: opening,
		currentInstallment:   first.Installment,
		totalRemainingCost:   sumInstallments(schedule),
		termMonths:           len(schedule),
		remainingPeriods:     len(schedule),
		schedule:             schedule,
		scheduleSource:       valueobject.ScheduleSourceImported,
		version:              1,
		createdAt:            now,
		updatedAt:            now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewScheduleImported(
		id, ownerID, opening, first.Installment, currency, len(schedule),
	))

	return loan, nil
}

// ReconstructLoanAccount rebuilds a LoanAccount aggregate from persistence.
func ReconstructLoanAccount(
	id, ownerID string,
	kind valueobject.LoanKind,
	currency string,
	annualRatePercent decimal.Decimal,
	rateSource valueobject.RateSource,
	monthlyInsurance, originalPrincipal, outstandingPrincipal,
	currentInstallment, totalRemainingCost, cumulativeInterestSaved decimal.Decimal,
	termMonths, remainingPeriods int,
	schedule []ScheduleRow,
	scheduleSource valueobject.ScheduleSource,
	payments []Payment,
	prepayments []Prepayment,
	version int,
	createdAt, updatedAt time.Time,
) LoanAccount {
	return LoanAccount{
		id:                      id,
		ownerID:                 ownerID,
		kind:                    kind,
		currency:                currency,
		annualRatePercent:       annualRatePercent,
		rateSource:              rateSource,
		monthlyInsurance:        monthlyInsurance,
		originalPrincipal:       originalPrincipal,
		outstandingPrincipal:    outstandingPrincipal,
		currentInstallment:      currentInstallment,
		totalRemainingCost:      totalRemainingCost,
		cumulativeInterestSaved: cumulativeInterestSaved,
		termMonths:              termMonths,
		remainingPeriods:        remainingPeriods,
		schedule:                schedule,
		scheduleSource:          scheduleSource,
		payments:                payments,
		prepayments:             prepayments,
		version:                 version,
		createdAt:               createdAt,
		updatedAt:               updatedAt,
	}
}

// ---------------------------------------------------------------------------
// Payment ledger
// ---------------------------------------------------------------------------

// RecordPayment marks the next unpaid period as paid. The split is taken
// from the schedule row when one exists at that period; otherwise it is
// computed from the stored monthly rate (manual tracking fallback).
func (l LoanAccount) RecordPayment(now time.Time) (Payment, LoanAccount, error) {
	if l.outstandingPrincipal.LessThanOrEqual(decimal.Zero) {
		return Payment{}, l, ErrLoanFullyPaid
	}

	period := len(l.payments) + 1

	var payment Payment
	if period <= len(l.schedule) {
		row := l.schedule[period-1]
		payment = Payment{
			ID:           uuid.New().String(),
			PaidAt:       now,
			Period:       period,
			Amount:       row.Installment,
			Interest:     row.Interest,
			Principal:    row.Principal,
			Insurance:    row.Insurance,
			BalanceAfter: row.Balance,
		}
	} else {
		rate := MonthlyRate(l.annualRatePercent)
		interest := l.outstandingPrincipal.Mul(rate).Round(2)
		principalPart := l.currentInstallment.Sub(l.monthlyInsurance).Sub(interest)
		balance := l.outstandingPrincipal.Sub(principalPart)
		if balance.LessThan(decimal.Zero) {
			balance = decimal.Zero
		}
		payment = Payment{
			ID:           uuid.New().String(),
			PaidAt:       now,
			Period:       period,
			Amount:       l.currentInstallment,
			Interest:     interest,
			Principal:    principalPart,
			Insurance:    l.monthlyInsurance,
			BalanceAfter: balance,
		}
	}

	next := l
	next.payments = append(copyPayments(l.payments), payment)
	next.outstandingPrincipal = payment.BalanceAfter
	next.remainingPeriods = l.remainingPeriods - 1
	if next.remainingPeriods < 0 {
		next.remainingPeriods = 0
	}
	next.totalRemainingCost = l.totalRemainingCost.Sub(payment.Amount)
	if next.totalRemainingCost.LessThan(decimal.Zero) {
		next.totalRemainingCost = decimal.Zero
	}
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPaymentRecorded(
		l.id, l.ownerID, payment.ID, payment.Amount, payment.BalanceAfter, period,
	))

	return payment, next, nil
}

// ReversePayment deletes a recorded payment and undoes its effect on the
// balances. Only the most recent payment is reversible, and only while no
// prepayment has been applied since it was recorded; either would
// desynchronize the balances from the schedule and the prepayment history.
func (l LoanAccount) ReversePayment(paymentID string, now time.Time) (LoanAccount, error) {
	idx := -1
	for i, p := range l.payments {
		if p.ID == paymentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return l, fmt.Errorf("%w: %s", ErrPaymentNotFound, paymentID)
	}
	if idx != len(l.payments)-1 {
		return l, fmt.Errorf("%w: %s", ErrPaymentNotLatest, paymentID)
	}

	reversed := l.payments[idx]
	if n := len(l.prepayments); n > 0 && !l.prepayments[n-1].AppliedAt.Before(reversed.PaidAt) {
		return l, fmt.Errorf("%w: %s", ErrPaymentSuperseded, paymentID)
	}
	restored := reversed.BalanceAfter.Add(reversed.Principal)

	next := l
	next.payments = copyPayments(l.payments[:idx])
	next.outstandingPrincipal = restored
	next.remainingPeriods = l.remainingPeriods + 1
	next.totalRemainingCost = l.totalRemainingCost.Add(reversed.Amount)
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPaymentReversed(
		l.id, l.ownerID, reversed.ID, reversed.Amount, restored, reversed.Period,
	))

	return next, nil
}

// ---------------------------------------------------------------------------
// Prepayments
// ---------------------------------------------------------------------------

// ApplyPrepayment re-derives the simulation for the given inputs and commits
// it: balances move, the chosen policy's field changes, interest saved is
// accumulated, and a frozen Prepayment record is appended. When the loan's
// rate was unknown, the reference rate used is persisted as estimated. The
// unconsumed tail of the schedule is regenerated so future payments reflect
// the post-prepayment numbers.
func (l LoanAccount) ApplyPrepayment(
	extraAmount decimal.Decimal,
	policy valueobject.PrepaymentPolicy,
	referenceAnnualRatePercent decimal.Decimal,
	now time.Time,
) (Prepayment, LoanAccount, error) {
	preview, err := l.SimulatePrepayment(extraAmount, policy, referenceAnnualRatePercent)
	if err != nil {
		return Prepayment{}, l, err
	}

	prepayment := Prepayment{
		ID:                uuid.New().String(),
		AppliedAt:         now,
		Amount:            extraAmount,
		Policy:            policy,
		InterestSaved:     preview.InterestSaved,
		AnnualRatePercent: preview.AnnualRatePercent,
	}

	next := l
	next.outstandingPrincipal = preview.NewOutstanding
	next.currentInstallment = preview.NewInstallment
	next.remainingPeriods = preview.NewTermMonths
	next.totalRemainingCost = l.totalRemainingCost.Sub(preview.InterestSaved).Sub(extraAmount)
	if next.totalRemainingCost.LessThan(decimal.Zero) {
		next.totalRemainingCost = decimal.Zero
	}
	next.cumulativeInterestSaved = l.cumulativeInterestSaved.Add(preview.InterestSaved)
	next.prepayments = append(copyPrepayments(l.prepayments), prepayment)
	if !l.rateSource.Known() {
		next.annualRatePercent = preview.AnnualRatePercent
		next.rateSource = valueobject.RateSourceEstimated
	}

	next.regenerateScheduleTail(preview, now)

	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPrepaymentApplied(
		l.id, l.ownerID, prepayment.ID, extraAmount, policy.String(),
		preview.InterestSaved, preview.NewOutstanding,
	))

	return prepayment, next, nil
}

// regenerateScheduleTail replaces the unconsumed schedule rows with rows
// amortized from the post-prepayment balance at the committed installment.
// Consumed rows stay untouched for history. Under reduce-term the ceiled term
// leaves a smaller final payment; the last row absorbs it.
func (next *LoanAccount) regenerateScheduleTail(preview PrepaymentPreview, now time.Time) {
	consumed := len(next.payments)
	if consumed > len(next.schedule) {
		consumed = len(next.schedule)
	}
	prefix := make([]ScheduleRow, consumed)
	copy(prefix, next.schedule[:consumed])

	if preview.NewOutstanding.IsZero() || next.remainingPeriods == 0 {
		next.schedule = prefix
		next.remainingPeriods = 0
		return
	}

	rate := MonthlyRate(preview.AnnualRatePercent)
	payment := next.currentInstallment.Sub(next.monthlyInsurance)
	remaining := preview.NewOutstanding

	tail := make([]ScheduleRow, 0, next.remainingPeriods)
	for period := 1; period <= next.remainingPeriods && remaining.GreaterThan(decimal.Zero); period++ {
		interest := remaining.Mul(rate).Round(2)
		principalPart := payment.Sub(interest)
		rowPayment := payment
		if period == next.remainingPeriods || principalPart.GreaterThanOrEqual(remaining) {
			principalPart = remaining
			rowPayment = principalPart.Add(interest)
		}
		remaining = remaining.Sub(principalPart)

		tail = append(tail, ScheduleRow{
			Period:      consumed + period,
			DueDate:     now.AddDate(0, period, 0).Format(dueDateLayout),
			Installment: rowPayment.Add(next.monthlyInsurance),
			Interest:    interest,
			Principal:   principalPart,
			Insurance:   next.monthlyInsurance,
			Balance:     remaining,
		})
	}

	next.schedule = append(prefix, tail...)
	next.remainingPeriods = len(tail)
}

// ---------------------------------------------------------------------------
// Clearing
// ---------------------------------------------------------------------------

// Clear resets every numeric field to zero and empties both histories and the
// schedule, keeping only the loan's identity. Idempotent.
func (l LoanAccount) Clear(now time.Time) LoanAccount {
	next := l
	next.annualRatePercent = decimal.Zero
	next.rateSource = valueobject.RateSourceUnknown
	next.monthlyInsurance = decimal.Zero
	next.originalPrincipal = decimal.Zero
	next.outstandingPrincipal = decimal.Zero
	next.currentInstallment = decimal.Zero
	next.totalRemainingCost = decimal.Zero
	next.cumulativeInterestSaved = decimal.Zero
	next.termMonths = 0
	next.remainingPeriods = 0
	next.schedule = nil
	next.scheduleSource = valueobject.ScheduleSource{}
	next.payments = nil
	next.prepayments = nil
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanCleared(l.id, l.ownerID))
	return next
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l LoanAccount) ID() string                                { return l.id }
func (l LoanAccount) OwnerID() string                           { return l.ownerID }
func (l LoanAccount) Kind() valueobject.LoanKind                { return l.kind }
func (l LoanAccount) Currency() string                          { return l.currency }
func (l LoanAccount) AnnualRatePercent() decimal.Decimal        { return l.annualRatePercent }
func (l LoanAccount) RateSource() valueobject.RateSource        { return l.rateSource }
func (l LoanAccount) MonthlyInsurance() decimal.Decimal         { return l.monthlyInsurance }
func (l LoanAccount) OriginalPrincipal() decimal.Decimal        { return l.originalPrincipal }
func (l LoanAccount) OutstandingPrincipal() decimal.Decimal     { return l.outstandingPrincipal }
func (l LoanAccount) CurrentInstallment() decimal.Decimal       { return l.currentInstallment }
func (l LoanAccount) TotalRemainingCost() decimal.Decimal       { return l.totalRemainingCost }
func (l LoanAccount) CumulativeInterestSaved() decimal.Decimal  { return l.cumulativeInterestSaved }
func (l LoanAccount) TermMonths() int                           { return l.termMonths }
func (l LoanAccount) RemainingPeriods() int                     { return l.remainingPeriods }
func (l LoanAccount) ScheduleSource() valueobject.ScheduleSource { return l.scheduleSource }
func (l LoanAccount) Version() int                              { return l.version }
func (l LoanAccount) CreatedAt() time.Time                      { return l.createdAt }
func (l LoanAccount) UpdatedAt() time.Time                      { return l.updatedAt }
func (l LoanAccount) DomainEvents() []event.DomainEvent         { return l.domainEvents }

// Schedule returns a defensive copy of the amortization table.
func (l LoanAccount) Schedule() []ScheduleRow {
	if l.schedule == nil {
		return nil
	}
	out := make([]ScheduleRow, len(l.schedule))
	copy(out, l.schedule)
	return out
}

// Payments returns a defensive copy of the payment history.
func (l LoanAccount) Payments() []Payment {
	return copyPayments(l.payments)
}

// Prepayments returns a defensive copy of the prepayment history.
func (l LoanAccount) Prepayments() []Prepayment {
	return copyPrepayments(l.prepayments)
}

// ClearEvents returns a copy with an empty event list.
func (l LoanAccount) ClearEvents() LoanAccount {
	next := l
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func sumInstallments(schedule []ScheduleRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range schedule {
		total = total.Add(row.Installment)
	}
	return total
}

func copyEvents(events []event.DomainEvent) []event.DomainEvent {
	if events == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(events))
	copy(out, events)
	return out
}

func copyPayments(payments []Payment) []Payment {
	if payments == nil {
		return nil
	}
	out := make([]Payment, len(payments))
	copy(out, payments)
	return out
}

func copyPrepayments(prepayments []Prepayment) []Prepayment {
	if prepayments == nil {
		return nil
	}
	out := make([]Prepayment, len(prepayments))
	copy(out, prepayments)
	return out
}
