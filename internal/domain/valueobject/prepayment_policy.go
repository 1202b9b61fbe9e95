package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// PrepaymentPolicy – immutable value object
// ---------------------------------------------------------------------------

// PrepaymentPolicy selects what an extra principal payment shortens: the
// periodic installment (term stays fixed) or the remaining term (installment
// stays fixed).
type PrepaymentPolicy struct {
	value string
}

const (
	policyReduceInstallment = "REDUCE_INSTALLMENT"
	policyReduceTerm        = "REDUCE_TERM"
)

var (
	PrepaymentPolicyReduceInstallment = PrepaymentPolicy{value: policyReduceInstallment}
	PrepaymentPolicyReduceTerm        = PrepaymentPolicy{value: policyReduceTerm}
)

var validPrepaymentPolicies = map[string]PrepaymentPolicy{
	policyReduceInstallment: PrepaymentPolicyReduceInstallment,
	policyReduceTerm:        PrepaymentPolicyReduceTerm,
}

// NewPrepaymentPolicy creates a PrepaymentPolicy from a raw string.
func NewPrepaymentPolicy(s string) (PrepaymentPolicy, error) {
	v, ok := validPrepaymentPolicies[s]
	if !ok {
		return PrepaymentPolicy{}, fmt.Errorf("invalid prepayment policy: %q", s)
	}
	return v, nil
}

// String returns the string representation of the policy.
func (p PrepaymentPolicy) String() string { return p.value }

// IsZero returns true if the policy has not been initialised.
func (p PrepaymentPolicy) IsZero() bool { return p.value == "" }

// Equal returns true when both policies carry the same value.
func (p PrepaymentPolicy) Equal(other PrepaymentPolicy) bool { return p.value == other.value }
