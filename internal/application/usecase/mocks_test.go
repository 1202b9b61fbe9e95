package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/finhogar/loan-engine/internal/domain/event"
	"github.com/finhogar/loan-engine/internal/domain/model"
	"github.com/finhogar/loan-engine/internal/domain/valueobject"
)

type mockLoanAccountRepository struct {
	findByIDFunc      func(ctx context.Context, ownerID, id string) (model.LoanAccount, error)
	findByOwnerIDFunc func(ctx context.Context, ownerID string) ([]model.LoanAccount, error)
	saveErr           error
	savedLoan         *model.LoanAccount
}

func (m *mockLoanAccountRepository) Save(_ context.Context, loan model.LoanAccount) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedLoan = &loan
	return nil
}

func (m *mockLoanAccountRepository) FindByID(ctx context.Context, ownerID, id string) (model.LoanAccount, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, ownerID, id)
	}
	return model.LoanAccount{}, model.ErrLoanNotFound
}

func (m *mockLoanAccountRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]model.LoanAccount, error) {
	if m.findByOwnerIDFunc != nil {
		return m.findByOwnerIDFunc(ctx, ownerID)
	}
	return nil, nil
}

type mockEventPublisher struct {
	publishErr      error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(_ context.Context, events ...event.DomainEvent) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.publishedEvents = append(m.publishedEvents, events...)
	return nil
}

var fixedNow = time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)

// standardLoan is a 100,000 / 12% / 12-month loan with no insurance.
func standardLoan(t *testing.T) model.LoanAccount {
	t.Helper()
	loan, err := model.NewLoanAccount(
		"owner-1", valueobject.LoanKindMortgage, "USD",
		decimal.NewFromInt(100000), decimal.NewFromInt(12), 12,
		decimal.Zero, fixedNow,
	)
	require.NoError(t, err)
	return loan.ClearEvents()
}

func repoReturning(loan model.LoanAccount) *mockLoanAccountRepository {
	return &mockLoanAccountRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.LoanAccount, error) {
			return loan, nil
		},
	}
}
