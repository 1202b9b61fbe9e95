package grpc_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/application/usecase"
	"github.com/finhogar/loan-engine/internal/domain/event"
	"github.com/finhogar/loan-engine/internal/domain/model"
	"github.com/finhogar/loan-engine/internal/domain/valueobject"
	grpcPresentation "github.com/finhogar/loan-engine/internal/presentation/grpc"
)

type stubRepo struct {
	loan  model.LoanAccount
	loans []model.LoanAccount
	err   error
}

func (s *stubRepo) Save(context.Context, model.LoanAccount) error { return nil }
func (s *stubRepo) FindByID(context.Context, string, string) (model.LoanAccount, error) {
	return s.loan, s.err
}
func (s *stubRepo) FindByOwnerID(context.Context, string) ([]model.LoanAccount, error) {
	return s.loans, s.err
}

type stubPublisher struct{}

func (stubPublisher) Publish(context.Context, ...event.DomainEvent) error { return nil }

func newHandler(repo *stubRepo) *grpcPresentation.LoanEngineHandler {
	pub := stubPublisher{}
	return grpcPresentation.NewLoanEngineHandler(
		usecase.NewSetupLoanUseCase(repo, pub),
		usecase.NewImportScheduleUseCase(repo, pub),
		usecase.NewGetLoanUseCase(repo),
		usecase.NewListLoansUseCase(repo),
		usecase.NewRecordPaymentUseCase(repo, pub),
		usecase.NewReversePaymentUseCase(repo, pub),
		usecase.NewSimulatePrepaymentUseCase(repo),
		usecase.NewApplyPrepaymentUseCase(repo, pub),
		usecase.NewClearLoanUseCase(repo, pub),
	)
}

func TestHandler_SetupLoan(t *testing.T) {
	h := newHandler(&stubRepo{})

	resp, err := h.SetupLoan(context.Background(), &dto.SetupLoanRequest{
		OwnerID:           "owner-1",
		Kind:              "MORTGAGE",
		Currency:          "USD",
		Principal:         decimal.NewFromInt(100000),
		AnnualRatePercent: decimal.NewFromInt(12),
		TermMonths:        12,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, resp.Schedule, 12)
}

func TestHandler_SetupLoan_InvalidInputMapsToInvalidArgument(t *testing.T) {
	h := newHandler(&stubRepo{})

	_, err := h.SetupLoan(context.Background(), &dto.SetupLoanRequest{
		OwnerID:           "owner-1",
		Kind:              "MORTGAGE",
		Currency:          "USD",
		Principal:         decimal.Zero,
		AnnualRatePercent: decimal.NewFromInt(12),
		TermMonths:        12,
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHandler_GetLoan_MissingMapsToNotFound(t *testing.T) {
	h := newHandler(&stubRepo{err: model.ErrLoanNotFound})

	_, err := h.GetLoan(context.Background(), &dto.GetLoanRequest{
		OwnerID: "owner-1",
		LoanID:  "missing",
	})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestHandler_ListLoans(t *testing.T) {
	loan, err := model.NewLoanAccount(
		"owner-1", valueobject.LoanKindMortgage, "USD",
		decimal.NewFromInt(100000), decimal.NewFromInt(12), 12,
		decimal.Zero, time.Now().UTC(),
	)
	require.NoError(t, err)

	h := newHandler(&stubRepo{loans: []model.LoanAccount{loan}})

	resp, err := h.ListLoans(context.Background(), &dto.ListLoansRequest{OwnerID: "owner-1"})
	require.NoError(t, err)
	require.Len(t, resp.Loans, 1)
	assert.Equal(t, loan.ID(), resp.Loans[0].ID)
}

func TestHandler_ReversePayment_NotLatestMapsToFailedPrecondition(t *testing.T) {
	loan, err := model.NewLoanAccount(
		"owner-1", valueobject.LoanKindMortgage, "USD",
		decimal.NewFromInt(100000), decimal.NewFromInt(12), 12,
		decimal.Zero, time.Now().UTC(),
	)
	require.NoError(t, err)
	first, loan, err := loan.RecordPayment(time.Now().UTC())
	require.NoError(t, err)
	_, loan, err = loan.RecordPayment(time.Now().UTC())
	require.NoError(t, err)

	h := newHandler(&stubRepo{loan: loan})

	_, err = h.ReversePayment(context.Background(), &dto.ReversePaymentRequest{
		OwnerID:   "owner-1",
		LoanID:    loan.ID(),
		PaymentID: first.ID,
	})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}
