package usecase

import (
	"github.com/finhogar/loan-engine/internal/application/dto"
	"github.com/finhogar/loan-engine/internal/domain/model"
)

func toLoanResponse(loan model.LoanAccount) dto.LoanResponse {
	resp := dto.LoanResponse{
		ID:                      loan.ID(),
		OwnerID:                 loan.OwnerID(),
		Kind:                    loan.Kind().String(),
		Currency:                loan.Currency(),
		AnnualRatePercent:       loan.AnnualRatePercent(),
		RateSource:              loan.RateSource().String(),
		MonthlyInsurance:        loan.MonthlyInsurance(),
		OriginalPrincipal:       loan.OriginalPrincipal(),
		OutstandingPrincipal:    loan.OutstandingPrincipal(),
		CurrentInstallment:      loan.CurrentInstallment(),
		TotalRemainingCost:      loan.TotalRemainingCost(),
		CumulativeInterestSaved: loan.CumulativeInterestSaved(),
		TermMonths:              loan.TermMonths(),
		RemainingPeriods:        loan.RemainingPeriods(),
		ScheduleSource:          loan.ScheduleSource().String(),
		CreatedAt:               loan.CreatedAt(),
		UpdatedAt:               loan.UpdatedAt(),
	}

	for _, row := range loan.Schedule() {
		resp.Schedule = append(resp.Schedule, toScheduleRowResponse(row))
	}
	for _, p := range loan.Payments() {
		resp.Payments = append(resp.Payments, toPaymentRecord(p))
	}
	for _, p := range loan.Prepayments() {
		resp.Prepayments = append(resp.Prepayments, toPrepaymentRecord(p))
	}

	return resp
}

func toScheduleRowResponse(row model.ScheduleRow) dto.ScheduleRowResponse {
	return dto.ScheduleRowResponse{
		Period:      row.Period,
		DueDate:     row.DueDate,
		Installment: row.Installment,
		Interest:    row.Interest,
		Principal:   row.Principal,
		Insurance:   row.Insurance,
		Balance:     row.Balance,
	}
}

func toPaymentRecord(p model.Payment) dto.PaymentRecord {
	return dto.PaymentRecord{
		ID:           p.ID,
		PaidAt:       p.PaidAt,
		Period:       p.Period,
		Amount:       p.Amount,
		Interest:     p.Interest,
		Principal:    p.Principal,
		Insurance:    p.Insurance,
		BalanceAfter: p.BalanceAfter,
	}
}

func toPrepaymentRecord(p model.Prepayment) dto.PrepaymentRecord {
	return dto.PrepaymentRecord{
		ID:                p.ID,
		AppliedAt:         p.AppliedAt,
		Amount:            p.Amount,
		Policy:            p.Policy.String(),
		InterestSaved:     p.InterestSaved,
		AnnualRatePercent: p.AnnualRatePercent,
	}
}
