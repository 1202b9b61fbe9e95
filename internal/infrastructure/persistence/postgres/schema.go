package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS loan_accounts (
	id                        TEXT PRIMARY KEY,
	owner_id                  TEXT NOT NULL,
	kind                      TEXT NOT NULL,
	currency                  TEXT NOT NULL,
	annual_rate_percent       NUMERIC(12,6) NOT NULL,
	rate_source               TEXT NOT NULL,
	monthly_insurance         NUMERIC(18,2) NOT NULL,
	original_principal        NUMERIC(18,2) NOT NULL,
	outstanding_principal     NUMERIC(18,2) NOT NULL,
	current_installment       NUMERIC(18,2) NOT NULL,
	total_remaining_cost      NUMERIC(18,2) NOT NULL,
	cumulative_interest_saved NUMERIC(18,2) NOT NULL,
	term_months               INTEGER NOT NULL,
	remaining_periods         INTEGER NOT NULL,
	schedule_source           TEXT NOT NULL DEFAULT '',
	version                   INTEGER NOT NULL,
	created_at                TIMESTAMPTZ NOT NULL,
	updated_at                TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_loan_accounts_owner ON loan_accounts (owner_id);

CREATE TABLE IF NOT EXISTS schedule_rows (
	loan_id     TEXT NOT NULL REFERENCES loan_accounts(id) ON DELETE CASCADE,
	period      INTEGER NOT NULL,
	due_date    TEXT NOT NULL DEFAULT '',
	installment NUMERIC(18,2) NOT NULL,
	interest    NUMERIC(18,2) NOT NULL,
	principal   NUMERIC(18,2) NOT NULL,
	insurance   NUMERIC(18,2) NOT NULL,
	balance     NUMERIC(18,2) NOT NULL,
	PRIMARY KEY (loan_id, period)
);

CREATE TABLE IF NOT EXISTS loan_payments (
	id            TEXT PRIMARY KEY,
	loan_id       TEXT NOT NULL REFERENCES loan_accounts(id) ON DELETE CASCADE,
	seq           INTEGER NOT NULL,
	period        INTEGER NOT NULL,
	paid_at       TIMESTAMPTZ NOT NULL,
	amount        NUMERIC(18,2) NOT NULL,
	interest      NUMERIC(18,2) NOT NULL,
	principal     NUMERIC(18,2) NOT NULL,
	insurance     NUMERIC(18,2) NOT NULL,
	balance_after NUMERIC(18,2) NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_loan_payments_loan ON loan_payments (loan_id, seq);

CREATE TABLE IF NOT EXISTS loan_prepayments (
	id                  TEXT PRIMARY KEY,
	loan_id             TEXT NOT NULL REFERENCES loan_accounts(id) ON DELETE CASCADE,
	seq                 INTEGER NOT NULL,
	applied_at          TIMESTAMPTZ NOT NULL,
	amount              NUMERIC(18,2) NOT NULL,
	policy              TEXT NOT NULL,
	interest_saved      NUMERIC(18,2) NOT NULL,
	annual_rate_percent NUMERIC(12,6) NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_loan_prepayments_loan ON loan_prepayments (loan_id, seq);
`

// EnsureSchema creates the engine's tables when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
