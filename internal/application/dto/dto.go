package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// SetupLoanRequest carries the manual-setup parameters for a new loan.
type SetupLoanRequest struct {
	OwnerID           string          `json:"owner_id"`
	Kind              string          `json:"kind"`
	Currency          string          `json:"currency"`
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermMonths        int             `json:"term_months"`
	MonthlyInsurance  decimal.Decimal `json:"monthly_insurance"`
}

// ImportedRow is one externally parsed schedule row; numeric cells may be
// locale-formatted strings.
type ImportedRow struct {
	Period      string `json:"period"`
	DueDate     string `json:"due_date"`
	Installment string `json:"installment"`
	Interest    string `json:"interest"`
	Principal   string `json:"principal"`
	Insurance   string `json:"insurance"`
	Balance     string `json:"balance"`
}

// ImportScheduleRequest carries an externally parsed amortization table.
type ImportScheduleRequest struct {
	OwnerID  string        `json:"owner_id"`
	Kind     string        `json:"kind"`
	Currency string        `json:"currency"`
	Rows     []ImportedRow `json:"rows"`
}

// RecordPaymentRequest marks the next due period of a loan as paid.
type RecordPaymentRequest struct {
	OwnerID string `json:"owner_id"`
	LoanID  string `json:"loan_id"`
}

// ReversePaymentRequest deletes a recorded payment.
type ReversePaymentRequest struct {
	OwnerID   string `json:"owner_id"`
	LoanID    string `json:"loan_id"`
	PaymentID string `json:"payment_id"`
}

// SimulatePrepaymentRequest previews an extra principal payment.
type SimulatePrepaymentRequest struct {
	OwnerID                    string          `json:"owner_id"`
	LoanID                     string          `json:"loan_id"`
	ExtraAmount                decimal.Decimal `json:"extra_amount"`
	Policy                     string          `json:"policy"`
	ReferenceAnnualRatePercent decimal.Decimal `json:"reference_annual_rate_percent"`
}

// ApplyPrepaymentRequest commits an extra principal payment.
type ApplyPrepaymentRequest struct {
	OwnerID                    string          `json:"owner_id"`
	LoanID                     string          `json:"loan_id"`
	ExtraAmount                decimal.Decimal `json:"extra_amount"`
	Policy                     string          `json:"policy"`
	ReferenceAnnualRatePercent decimal.Decimal `json:"reference_annual_rate_percent"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	OwnerID string `json:"owner_id"`
	LoanID  string `json:"loan_id"`
}

// ListLoansRequest identifies an owner whose loans to list.
type ListLoansRequest struct {
	OwnerID string `json:"owner_id"`
}

// ClearLoanRequest identifies a loan to reset.
type ClearLoanRequest struct {
	OwnerID string `json:"owner_id"`
	LoanID  string `json:"loan_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScheduleRowResponse represents a single amortization table row.
type ScheduleRowResponse struct {
	Period      int             `json:"period"`
	DueDate     string          `json:"due_date,omitempty"`
	Installment decimal.Decimal `json:"installment"`
	Interest    decimal.Decimal `json:"interest"`
	Principal   decimal.Decimal `json:"principal"`
	Insurance   decimal.Decimal `json:"insurance"`
	Balance     decimal.Decimal `json:"balance"`
}

// PaymentRecord is the external representation of a historical payment.
type PaymentRecord struct {
	ID           string          `json:"id"`
	PaidAt       time.Time       `json:"paid_at"`
	Period       int             `json:"period"`
	Amount       decimal.Decimal `json:"amount"`
	Interest     decimal.Decimal `json:"interest"`
	Principal    decimal.Decimal `json:"principal"`
	Insurance    decimal.Decimal `json:"insurance"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// PrepaymentRecord is the external representation of a historical prepayment.
type PrepaymentRecord struct {
	ID                string          `json:"id"`
	AppliedAt         time.Time       `json:"applied_at"`
	Amount            decimal.Decimal `json:"amount"`
	Policy            string          `json:"policy"`
	InterestSaved     decimal.Decimal `json:"interest_saved"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
}

// LoanResponse is the external representation of a loan account.
type LoanResponse struct {
	ID                      string                `json:"id"`
	OwnerID                 string                `json:"owner_id"`
	Kind                    string                `json:"kind"`
	Currency                string                `json:"currency"`
	AnnualRatePercent       decimal.Decimal       `json:"annual_rate_percent"`
	RateSource              string                `json:"rate_source"`
	MonthlyInsurance        decimal.Decimal       `json:"monthly_insurance"`
	OriginalPrincipal       decimal.Decimal       `json:"original_principal"`
	OutstandingPrincipal    decimal.Decimal       `json:"outstanding_principal"`
	CurrentInstallment      decimal.Decimal       `json:"current_installment"`
	TotalRemainingCost      decimal.Decimal       `json:"total_remaining_cost"`
	CumulativeInterestSaved decimal.Decimal       `json:"cumulative_interest_saved"`
	TermMonths              int                   `json:"term_months"`
	RemainingPeriods        int                   `json:"remaining_periods"`
	ScheduleSource          string                `json:"schedule_source,omitempty"`
	Schedule                []ScheduleRowResponse `json:"schedule,omitempty"`
	Payments                []PaymentRecord       `json:"payments,omitempty"`
	Prepayments             []PrepaymentRecord    `json:"prepayments,omitempty"`
	CreatedAt               time.Time             `json:"created_at"`
	UpdatedAt               time.Time             `json:"updated_at"`
}

// ListLoansResponse holds all loan accounts of one owner.
type ListLoansResponse struct {
	Loans []LoanResponse `json:"loans"`
}

// RecordPaymentResponse is the outcome of recording a payment. When the loan
// was already fully paid no payment is created and FullyPaid is set.
type RecordPaymentResponse struct {
	LoanID               string          `json:"loan_id"`
	Payment              *PaymentRecord  `json:"payment,omitempty"`
	OutstandingPrincipal decimal.Decimal `json:"outstanding_principal"`
	RemainingPeriods     int             `json:"remaining_periods"`
	FullyPaid            bool            `json:"fully_paid,omitempty"`
}

// ReversePaymentResponse is the outcome of deleting a payment.
type ReversePaymentResponse struct {
	LoanID               string          `json:"loan_id"`
	OutstandingPrincipal decimal.Decimal `json:"outstanding_principal"`
	RemainingPeriods     int             `json:"remaining_periods"`
}

// PrepaymentPreviewResponse is the outcome of a prepayment simulation. When
// the requested policy cannot be computed at the current rate and balance,
// Applicable is false and Reason explains why.
type PrepaymentPreviewResponse struct {
	LoanID            string          `json:"loan_id"`
	Applicable        bool            `json:"applicable"`
	Reason            string          `json:"reason,omitempty"`
	Policy            string          `json:"policy"`
	NewOutstanding    decimal.Decimal `json:"new_outstanding"`
	OldInstallment    decimal.Decimal `json:"old_installment"`
	NewInstallment    decimal.Decimal `json:"new_installment"`
	OldTermMonths     int             `json:"old_term_months"`
	NewTermMonths     int             `json:"new_term_months"`
	InterestSaved     decimal.Decimal `json:"interest_saved"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
}

// ApplyPrepaymentResponse is the outcome of committing a prepayment.
type ApplyPrepaymentResponse struct {
	LoanID                  string           `json:"loan_id"`
	Prepayment              PrepaymentRecord `json:"prepayment"`
	OutstandingPrincipal    decimal.Decimal  `json:"outstanding_principal"`
	CurrentInstallment      decimal.Decimal  `json:"current_installment"`
	RemainingPeriods        int              `json:"remaining_periods"`
	CumulativeInterestSaved decimal.Decimal  `json:"cumulative_interest_saved"`
}
