package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finhogar/loan-engine/internal/domain/model"
	"github.com/finhogar/loan-engine/internal/domain/valueobject"
	pgutil "github.com/finhogar/loan-engine/pkg/postgres"
)

// LoanAccountRepo implements port.LoanAccountRepository.
type LoanAccountRepo struct {
	pool *pgxpool.Pool
}

// NewLoanAccountRepo creates a new PostgreSQL-backed loan account repository.
func NewLoanAccountRepo(pool *pgxpool.Pool) *LoanAccountRepo {
	return &LoanAccountRepo{pool: pool}
}

// Save persists a loan account together with its schedule and histories.
// A version column guards against concurrent writers; the schedule and the
// history lists are rewritten because prepayments regenerate the schedule
// tail and clearing empties everything.
func (r *LoanAccountRepo) Save(ctx context.Context, loan model.LoanAccount) error {
	return pgutil.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		loanQuery := `
			INSERT INTO loan_accounts (
				id, owner_id, kind, currency,
				annual_rate_percent, rate_source, monthly_insurance,
				original_principal, outstanding_principal, current_installment,
				total_remaining_cost, cumulative_interest_saved,
				term_months, remaining_periods, schedule_source,
				version, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
			ON CONFLICT (id) DO UPDATE SET
				annual_rate_percent       = EXCLUDED.annual_rate_percent,
				rate_source               = EXCLUDED.rate_source,
				monthly_insurance         = EXCLUDED.monthly_insurance,
				original_principal        = EXCLUDED.original_principal,
				outstanding_principal     = EXCLUDED.outstanding_principal,
				current_installment       = EXCLUDED.current_installment,
				total_remaining_cost      = EXCLUDED.total_remaining_cost,
				cumulative_interest_saved = EXCLUDED.cumulative_interest_saved,
				term_months               = EXCLUDED.term_months,
				remaining_periods         = EXCLUDED.remaining_periods,
				schedule_source           = EXCLUDED.schedule_source,
				version                   = loan_accounts.version + 1,
				updated_at                = EXCLUDED.updated_at
			WHERE loan_accounts.version = $16
		`
		tag, err := tx.Exec(ctx, loanQuery,
			loan.ID(), loan.OwnerID(), loan.Kind().String(), loan.Currency(),
			loan.AnnualRatePercent(), loan.RateSource().String(), loan.MonthlyInsurance(),
			loan.OriginalPrincipal(), loan.OutstandingPrincipal(), loan.CurrentInstallment(),
			loan.TotalRemainingCost(), loan.CumulativeInterestSaved(),
			loan.TermMonths(), loan.RemainingPeriods(), loan.ScheduleSource().String(),
			loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("save loan account: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return errors.New("optimistic locking conflict on loan account")
		}

		if _, err := tx.Exec(ctx, `DELETE FROM schedule_rows WHERE loan_id = $1`, loan.ID()); err != nil {
			return fmt.Errorf("clear schedule rows: %w", err)
		}
		for _, row := range loan.Schedule() {
			_, err := tx.Exec(ctx, `
				INSERT INTO schedule_rows (loan_id, period, due_date, installment, interest, principal, insurance, balance)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`, loan.ID(), row.Period, row.DueDate,
				row.Installment, row.Interest, row.Principal, row.Insurance, row.Balance,
			)
			if err != nil {
				return fmt.Errorf("save schedule row %d: %w", row.Period, err)
			}
		}

		if _, err := tx.Exec(ctx, `DELETE FROM loan_payments WHERE loan_id = $1`, loan.ID()); err != nil {
			return fmt.Errorf("clear payments: %w", err)
		}
		for seq, p := range loan.Payments() {
			_, err := tx.Exec(ctx, `
				INSERT INTO loan_payments (id, loan_id, seq, period, paid_at, amount, interest, principal, insurance, balance_after)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			`, p.ID, loan.ID(), seq, p.Period, p.PaidAt,
				p.Amount, p.Interest, p.Principal, p.Insurance, p.BalanceAfter,
			)
			if err != nil {
				return fmt.Errorf("save payment %s: %w", p.ID, err)
			}
		}

		if _, err := tx.Exec(ctx, `DELETE FROM loan_prepayments WHERE loan_id = $1`, loan.ID()); err != nil {
			return fmt.Errorf("clear prepayments: %w", err)
		}
		for seq, p := range loan.Prepayments() {
			_, err := tx.Exec(ctx, `
				INSERT INTO loan_prepayments (id, loan_id, seq, applied_at, amount, policy, interest_saved, annual_rate_percent)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`, p.ID, loan.ID(), seq, p.AppliedAt,
				p.Amount, p.Policy.String(), p.InterestSaved, p.AnnualRatePercent,
			)
			if err != nil {
				return fmt.Errorf("save prepayment %s: %w", p.ID, err)
			}
		}

		return nil
	})
}

// FindByID retrieves a loan account with its schedule and histories.
func (r *LoanAccountRepo) FindByID(ctx context.Context, ownerID, id string) (model.LoanAccount, error) {
	query := selectLoanQuery + ` WHERE owner_id = $1 AND id = $2`
	loan, err := r.scanOneLoan(ctx, query, ownerID, id)
	if err != nil {
		return model.LoanAccount{}, err
	}
	return r.loadChildren(ctx, loan)
}

// FindByOwnerID retrieves all loan accounts for an owner.
func (r *LoanAccountRepo) FindByOwnerID(ctx context.Context, ownerID string) ([]model.LoanAccount, error) {
	query := selectLoanQuery + ` WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query loan accounts: %w", err)
	}
	defer rows.Close()

	var loans []model.LoanAccount
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, loan := range loans {
		full, err := r.loadChildren(ctx, loan)
		if err != nil {
			return nil, err
		}
		loans[i] = full
	}
	return loans, nil
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

const selectLoanQuery = `
	SELECT id, owner_id, kind, currency,
	       annual_rate_percent, rate_source, monthly_insurance,
	       original_principal, outstanding_principal, current_installment,
	       total_remaining_cost, cumulative_interest_saved,
	       term_months, remaining_periods, schedule_source,
	       version, created_at, updated_at
	FROM loan_accounts`

type scannable interface {
	Scan(dest ...any) error
}

func (r *LoanAccountRepo) scanOneLoan(ctx context.Context, query string, args ...any) (model.LoanAccount, error) {
	row := r.pool.QueryRow(ctx, query, args...)
	loan, err := scanLoanRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LoanAccount{}, model.ErrLoanNotFound
	}
	return loan, err
}

func scanLoanRow(s scannable) (model.LoanAccount, error) {
	var (
		id, ownerID, kindStr, currency           string
		annualRatePercent                        decimal.Decimal
		rateSourceStr                            string
		monthlyInsurance, originalPrincipal      decimal.Decimal
		outstandingPrincipal, currentInstallment decimal.Decimal
		totalRemainingCost, interestSaved        decimal.Decimal
		termMonths, remainingPeriods             int
		scheduleSourceStr                        string
		version                                  int
		createdAt, updatedAt                     time.Time
	)

	err := s.Scan(
		&id, &ownerID, &kindStr, &currency,
		&annualRatePercent, &rateSourceStr, &monthlyInsurance,
		&originalPrincipal, &outstandingPrincipal, &currentInstallment,
		&totalRemainingCost, &interestSaved,
		&termMonths, &remainingPeriods, &scheduleSourceStr,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.LoanAccount{}, fmt.Errorf("scan loan account: %w", err)
	}

	kind, err := valueobject.NewLoanKind(kindStr)
	if err != nil {
		return model.LoanAccount{}, fmt.Errorf("parse loan kind: %w", err)
	}
	rateSource, err := valueobject.NewRateSource(rateSourceStr)
	if err != nil {
		return model.LoanAccount{}, fmt.Errorf("parse rate source: %w", err)
	}
	// A cleared loan has no schedule source.
	var scheduleSource valueobject.ScheduleSource
	if scheduleSourceStr != "" {
		scheduleSource, err = valueobject.NewScheduleSource(scheduleSourceStr)
		if err != nil {
			return model.LoanAccount{}, fmt.Errorf("parse schedule source: %w", err)
		}
	}

	return model.ReconstructLoanAccount(
		id, ownerID, kind, currency,
		annualRatePercent, rateSource,
		monthlyInsurance, originalPrincipal, outstandingPrincipal,
		currentInstallment, totalRemainingCost, interestSaved,
		termMonths, remainingPeriods,
		nil, scheduleSource, nil, nil,
		version, createdAt, updatedAt,
	), nil
}

func (r *LoanAccountRepo) loadChildren(ctx context.Context, loan model.LoanAccount) (model.LoanAccount, error) {
	schedule, err := loadSchedule(ctx, r.pool, loan.ID())
	if err != nil {
		return model.LoanAccount{}, err
	}
	payments, err := loadPayments(ctx, r.pool, loan.ID())
	if err != nil {
		return model.LoanAccount{}, err
	}
	prepayments, err := loadPrepayments(ctx, r.pool, loan.ID())
	if err != nil {
		return model.LoanAccount{}, err
	}

	return model.ReconstructLoanAccount(
		loan.ID(), loan.OwnerID(), loan.Kind(), loan.Currency(),
		loan.AnnualRatePercent(), loan.RateSource(),
		loan.MonthlyInsurance(), loan.OriginalPrincipal(), loan.OutstandingPrincipal(),
		loan.CurrentInstallment(), loan.TotalRemainingCost(), loan.CumulativeInterestSaved(),
		loan.TermMonths(), loan.RemainingPeriods(),
		schedule, loan.ScheduleSource(), payments, prepayments,
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	), nil
}

func loadSchedule(ctx context.Context, q pgutil.Querier, loanID string) ([]model.ScheduleRow, error) {
	rows, err := q.Query(ctx, `
		SELECT period, due_date, installment, interest, principal, insurance, balance
		FROM schedule_rows
		WHERE loan_id = $1
		ORDER BY period
	`, loanID)
	if err != nil {
		return nil, fmt.Errorf("query schedule rows: %w", err)
	}
	defer rows.Close()

	var schedule []model.ScheduleRow
	for rows.Next() {
		var row model.ScheduleRow
		if err := rows.Scan(&row.Period, &row.DueDate, &row.Installment,
			&row.Interest, &row.Principal, &row.Insurance, &row.Balance); err != nil {
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		schedule = append(schedule, row)
	}
	return schedule, rows.Err()
}

func loadPayments(ctx context.Context, q pgutil.Querier, loanID string) ([]model.Payment, error) {
	rows, err := q.Query(ctx, `
		SELECT id, period, paid_at, amount, interest, principal, insurance, balance_after
		FROM loan_payments
		WHERE loan_id = $1
		ORDER BY seq
	`, loanID)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.Period, &p.PaidAt,
			&p.Amount, &p.Interest, &p.Principal, &p.Insurance, &p.BalanceAfter); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func loadPrepayments(ctx context.Context, q pgutil.Querier, loanID string) ([]model.Prepayment, error) {
	rows, err := q.Query(ctx, `
		SELECT id, applied_at, amount, policy, interest_saved, annual_rate_percent
		FROM loan_prepayments
		WHERE loan_id = $1
		ORDER BY seq
	`, loanID)
	if err != nil {
		return nil, fmt.Errorf("query prepayments: %w", err)
	}
	defer rows.Close()

	var prepayments []model.Prepayment
	for rows.Next() {
		var (
			p         model.Prepayment
			policyStr string
		)
		if err := rows.Scan(&p.ID, &p.AppliedAt, &p.Amount, &policyStr,
			&p.InterestSaved, &p.AnnualRatePercent); err != nil {
			return nil, fmt.Errorf("scan prepayment: %w", err)
		}
		policy, err := valueobject.NewPrepaymentPolicy(policyStr)
		if err != nil {
			return nil, fmt.Errorf("parse prepayment policy: %w", err)
		}
		p.Policy = policy
		prepayments = append(prepayments, p)
	}
	return prepayments, rows.Err()
}
