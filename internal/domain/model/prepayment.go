package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/finhogar/loan-engine/internal/domain/valueobject"
)

// PrepaymentPreview is the outcome of simulating an extra principal payment.
// It carries the resolved rate actually used and the field the chosen policy
// changes; OldInstallment/NewInstallment are equal under reduce-term, the
// term fields under reduce-installment.
type PrepaymentPreview struct {
	Policy            valueobject.PrepaymentPolicy
	ExtraAmount       decimal.Decimal
	NewOutstanding    decimal.Decimal
	OldInstallment    decimal.Decimal
	NewInstallment    decimal.Decimal
	InterestSaved     decimal.Decimal
	AnnualRatePercent decimal.Decimal
	OldTermMonths     int
	NewTermMonths     int
}

// SimulatePrepayment computes the effect of applying extraAmount to the
// outstanding principal under the given policy, without mutating the loan.
//
// The rate is resolved from the loan's own disclosed or estimated rate; when
// the loan's rate is unknown (imported schedule) the caller must supply
// referenceAnnualRatePercent. Reduce-term requires the amortizing part of the
// installment to exceed interest-only on the reduced balance; otherwise
// ErrPrepaymentNotApplicable is returned.
func (l LoanAccount) SimulatePrepayment(
	extraAmount decimal.Decimal,
	policy valueobject.PrepaymentPolicy,
	referenceAnnualRatePercent decimal.Decimal,
) (PrepaymentPreview, error) {
	if extraAmount.LessThanOrEqual(decimal.Zero) {
		return PrepaymentPreview{}, errors.New("extra amount must be positive")
	}
	if policy.IsZero() {
		return PrepaymentPreview{}, errors.New("prepayment policy is required")
	}
	if l.remainingPeriods <= 0 {
		return PrepaymentPreview{}, fmt.Errorf("%w: no periods remain", ErrPrepaymentNotApplicable)
	}

	annualRate, err := l.resolveAnnualRate(referenceAnnualRatePercent)
	if err != nil {
		return PrepaymentPreview{}, err
	}
	rate := MonthlyRate(annualRate)

	newOutstanding := l.outstandingPrincipal.Sub(extraAmount)
	if newOutstanding.LessThan(decimal.Zero) {
		newOutstanding = decimal.Zero
	}

	// Principal + interest portion only; insurance rides on top unchanged.
	baseInstallment := l.currentInstallment.Sub(l.monthlyInsurance)

	preview := PrepaymentPreview{
		Policy:            policy,
		ExtraAmount:       extraAmount,
		NewOutstanding:    newOutstanding,
		OldInstallment:    l.currentInstallment,
		NewInstallment:    l.currentInstallment,
		AnnualRatePercent: annualRate,
		OldTermMonths:     l.remainingPeriods,
		NewTermMonths:     l.remainingPeriods,
	}

	switch {
	case policy.Equal(valueobject.PrepaymentPolicyReduceInstallment):
		payment := FixedPayment(newOutstanding, rate, l.remainingPeriods)
		preview.NewInstallment = payment.Add(l.monthlyInsurance).Round(2)
		if preview.NewInstallment.GreaterThan(preview.OldInstallment) {
			preview.NewInstallment = preview.OldInstallment
		}

	case policy.Equal(valueobject.PrepaymentPolicyReduceTerm):
		newTerm, err := reducedTerm(baseInstallment, newOutstanding, rate)
		if err != nil {
			return PrepaymentPreview{}, err
		}
		if newTerm > l.remainingPeriods {
			newTerm = l.remainingPeriods
		}
		preview.NewTermMonths = newTerm

	default:
		return PrepaymentPreview{}, fmt.Errorf("unsupported prepayment policy %s", policy)
	}

	oldTotal := l.currentInstallment.Mul(decimal.NewFromInt(int64(preview.OldTermMonths)))
	newTotal := preview.NewInstallment.Mul(decimal.NewFromInt(int64(preview.NewTermMonths)))
	saved := oldTotal.Sub(newTotal)
	if saved.LessThan(decimal.Zero) {
		saved = decimal.Zero
	}
	preview.InterestSaved = saved.Round(2)

	return preview, nil
}

// reducedTerm solves the annuity formula for the number of periods needed to
// amortize balance with a fixed payment at monthly rate r:
//
//	n = ceil( ln(C / (C - B*r)) / ln(1+r) )
//
// Zero rate and zero balance take explicit branches.
func reducedTerm(payment, balance, rate decimal.Decimal) (int, error) {
	if balance.IsZero() {
		return 0, nil
	}
	if payment.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%w: installment has no amortizing portion", ErrPrepaymentNotApplicable)
	}

	if rate.IsZero() {
		return int(balance.Div(payment).Ceil().IntPart()), nil
	}

	interestOnly := balance.Mul(rate)
	if payment.LessThanOrEqual(interestOnly) {
		return 0, fmt.Errorf(
			"%w: installment %s does not exceed interest-only %s",
			ErrPrepaymentNotApplicable, payment.Round(2), interestOnly.Round(2),
		)
	}

	c := payment.InexactFloat64()
	n := math.Log(c/(c-balance.InexactFloat64()*rate.InexactFloat64())) /
		math.Log(1+rate.InexactFloat64())
	return int(math.Ceil(n)), nil
}

func (l LoanAccount) resolveAnnualRate(reference decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case l.rateSource.Equal(valueobject.RateSourceDisclosed):
		return l.annualRatePercent, nil
	case l.rateSource.Equal(valueobject.RateSourceEstimated) && !l.annualRatePercent.IsZero():
		return l.annualRatePercent, nil
	case reference.GreaterThan(decimal.Zero):
		return reference, nil
	}
	return decimal.Decimal{}, ErrRateUnavailable
}
