package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/application/usecase"
	"github.com/finhogar/loan-engine/internal/domain/model"
)

// LoanEngineHandler implements LoanEngineServiceServer over the use cases.
type LoanEngineHandler struct {
	UnimplementedLoanEngineServiceServer

	setupLoan      *usecase.SetupLoanUseCase
	importSchedule *usecase.ImportScheduleUseCase
	getLoan        *usecase.GetLoanUseCase
	listLoans      *usecase.ListLoansUseCase
	recordPayment  *usecase.RecordPaymentUseCase
	reversePayment *usecase.ReversePaymentUseCase
	simulate       *usecase.SimulatePrepaymentUseCase
	apply          *usecase.ApplyPrepaymentUseCase
	clearLoan      *usecase.ClearLoanUseCase
}

// NewLoanEngineHandler creates a new handler with all use-case dependencies.
func NewLoanEngineHandler(
	setupLoan *usecase.SetupLoanUseCase,
	importSchedule *usecase.ImportScheduleUseCase,
	getLoan *usecase.GetLoanUseCase,
	listLoans *usecase.ListLoansUseCase,
	recordPayment *usecase.RecordPaymentUseCase,
	reversePayment *usecase.ReversePaymentUseCase,
	simulate *usecase.SimulatePrepaymentUseCase,
	apply *usecase.ApplyPrepaymentUseCase,
	clearLoan *usecase.ClearLoanUseCase,
) *LoanEngineHandler {
	return &LoanEngineHandler{
		setupLoan:      setupLoan,
		importSchedule: importSchedule,
		getLoan:        getLoan,
		listLoans:      listLoans,
		recordPayment:  recordPayment,
		reversePayment: reversePayment,
		simulate:       simulate,
		apply:          apply,
		clearLoan:      clearLoan,
	}
}

// SetupLoan creates a loan from manual parameters and generates its schedule.
func (h *LoanEngineHandler) SetupLoan(ctx context.Context, req *dto.SetupLoanRequest) (*dto.LoanResponse, error) {
	resp, err := h.setupLoan.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &resp, nil
}

// ImportSchedule creates a loan from an externally parsed amortization table.
func (h *LoanEngineHandler) ImportSchedule(ctx context.Context, req *dto.ImportScheduleRequest) (*dto.LoanResponse, error) {
	resp, err := h.importSchedule.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &resp, nil
}

// GetLoan retrieves a loan with its schedule and histories.
func (h *LoanEngineHandler) GetLoan(ctx context.Context, req *dto.GetLoanRequest) (*dto.LoanResponse, error) {
	resp, err := h.getLoan.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &resp, nil
}

// ListLoans retrieves all loans of one owner.
func (h *LoanEngineHandler) ListLoans(ctx context.Context, req *dto.ListLoansRequest) (*dto.ListLoansResponse, error) {
	resp, err := h.listLoans.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &resp, nil
}

// RecordPayment marks the next due period as paid.
func (h *LoanEngineHandler) RecordPayment(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	resp, err := h.recordPayment.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &resp, nil
}

// ReversePayment deletes the most recent payment and restores loan state.
func (h *LoanEngineHandler) ReversePayment(ctx context.Context, req *dto.ReversePaymentRequest) (*dto.ReversePaymentResponse, error) {
	resp, err := h.reversePayment.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &resp, nil
}

// SimulatePrepayment previews an extra principal payment without persisting.
func (h *LoanEngineHandler) SimulatePrepayment(ctx context.Context, req *dto.SimulatePrepaymentRequest) (*dto.PrepaymentPreviewResponse, error) {
	resp, err := h.simulate.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &resp, nil
}

// ApplyPrepayment commits an extra principal payment.
func (h *LoanEngineHandler) ApplyPrepayment(ctx context.Context, req *dto.ApplyPrepaymentRequest) (*dto.ApplyPrepaymentResponse, error) {
	resp, err := h.apply.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &resp, nil
}

// ClearLoan resets the loan's balances, schedule, and histories.
func (h *LoanEngineHandler) ClearLoan(ctx context.Context, req *dto.ClearLoanRequest) (*dto.LoanResponse, error) {
	resp, err := h.clearLoan.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &resp, nil
}

// toStatusErr maps domain errors to gRPC status codes.
func toStatusErr(err error) error {
	switch {
	case errors.Is(err, model.ErrLoanNotFound),
		errors.Is(err, model.ErrPaymentNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrInvalidScheduleInput),
		errors.Is(err, model.ErrEmptySchedule):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrPaymentNotLatest),
		errors.Is(err, model.ErrPaymentSuperseded),
		errors.Is(err, model.ErrPrepaymentNotApplicable),
		errors.Is(err, model.ErrRateUnavailable):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
