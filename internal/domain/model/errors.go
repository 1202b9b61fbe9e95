package model

import "errors"

// Recoverable conditions reported to the caller. None of these should crash
// the hosting process; use cases wrap them with the loan id and operation.
var (
	// ErrInvalidScheduleInput signals bad generation parameters or an
	// imported table whose first row cannot anchor a loan.
	ErrInvalidScheduleInput = errors.New("invalid schedule input")

	// ErrEmptySchedule signals an import with zero rows.
	ErrEmptySchedule = errors.New("imported schedule has no rows")

	// ErrLoanNotFound signals a lookup for a loan that does not exist or
	// belongs to a different owner.
	ErrLoanNotFound = errors.New("loan account not found")

	// ErrLoanFullyPaid signals a payment recorded against a zero-balance
	// loan. Informational: callers treat it as a no-op, not a failure.
	ErrLoanFullyPaid = errors.New("loan is fully paid")

	// ErrPaymentNotFound signals a reversal target that does not exist.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrPaymentNotLatest signals an attempt to reverse a payment that is
	// not the most recently recorded one. Reversing out of order would
	// desynchronize period numbering from the schedule.
	ErrPaymentNotLatest = errors.New("only the most recent payment can be reversed")

	// ErrPaymentSuperseded signals an attempt to reverse a payment that
	// predates an applied prepayment. The prepayment already rebuilt the
	// balances and schedule on top of that payment, so undoing it would
	// leave the prepayment record and savings dangling.
	ErrPaymentSuperseded = errors.New("a prepayment was applied after this payment; it can no longer be reversed")

	// ErrPrepaymentNotApplicable signals a reduce-term request where the
	// installment does not exceed interest-only on the reduced balance.
	ErrPrepaymentNotApplicable = errors.New("prepayment not applicable at current rate and balance")

	// ErrRateUnavailable signals a simulation on a loan with an unknown
	// rate and no caller-supplied reference rate.
	ErrRateUnavailable = errors.New("annual rate unavailable: a reference rate is required")
)
