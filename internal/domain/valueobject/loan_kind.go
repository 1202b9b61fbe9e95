package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// LoanKind – immutable value object
// ---------------------------------------------------------------------------

// LoanKind distinguishes the two loan record types the engine powers.
type LoanKind struct {
	value string
}

const (
	loanKindMortgage    = "MORTGAGE"
	loanKindInstallment = "INSTALLMENT"
)

var (
	LoanKindMortgage    = LoanKind{value: loanKindMortgage}
	LoanKindInstallment = LoanKind{value: loanKindInstallment}
)

var validLoanKinds = map[string]LoanKind{
	loanKindMortgage:    LoanKindMortgage,
	loanKindInstallment: LoanKindInstallment,
}

// NewLoanKind creates a LoanKind from a raw string.
func NewLoanKind(s string) (LoanKind, error) {
	v, ok := validLoanKinds[s]
	if !ok {
		return LoanKind{}, fmt.Errorf("invalid loan kind: %q", s)
	}
	return v, nil
}

// String returns the string representation of the loan kind.
func (k LoanKind) String() string { return k.value }

// IsZero returns true if the kind has not been initialised.
func (k LoanKind) IsZero() bool { return k.value == "" }

// Equal returns true when both kinds carry the same value.
func (k LoanKind) Equal(other LoanKind) bool { return k.value == other.value }

// ---------------------------------------------------------------------------
// ScheduleSource – immutable value object
// ---------------------------------------------------------------------------

// ScheduleSource records whether the amortization table was generated by the
// engine or imported from externally parsed rows.
type ScheduleSource struct {
	value string
}

const (
	scheduleSourceGenerated = "GENERATED"
	scheduleSourceImported  = "IMPORTED"
)

var (
	ScheduleSourceGenerated = ScheduleSource{value: scheduleSourceGenerated}
	ScheduleSourceImported  = ScheduleSource{value: scheduleSourceImported}
)

var validScheduleSources = map[string]ScheduleSource{
	scheduleSourceGenerated: ScheduleSourceGenerated,
	scheduleSourceImported:  ScheduleSourceImported,
}

// NewScheduleSource creates a ScheduleSource from a raw string.
func NewScheduleSource(s string) (ScheduleSource, error) {
	v, ok := validScheduleSources[s]
	if !ok {
		return ScheduleSource{}, fmt.Errorf("invalid schedule source: %q", s)
	}
	return v, nil
}

// String returns the string representation of the schedule source.
func (s ScheduleSource) String() string { return s.value }

// IsZero returns true if the source has not been initialised.
func (s ScheduleSource) IsZero() bool { return s.value == "" }

// Equal returns true when both sources carry the same value.
func (s ScheduleSource) Equal(other ScheduleSource) bool { return s.value == other.value }
