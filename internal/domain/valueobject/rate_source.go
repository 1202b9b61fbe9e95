package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RateSource – immutable value object
// ---------------------------------------------------------------------------

// RateSource records where a loan's annual rate came from. Loans created from
// manual setup carry a DISCLOSED rate; loans created from an imported schedule
// start UNKNOWN and become ESTIMATED once the user supplies a reference rate
// for prepayment simulation.
type RateSource struct {
	value string
}

const (
	rateSourceDisclosed = "DISCLOSED"
	rateSourceEstimated = "ESTIMATED"
	rateSourceUnknown   = "UNKNOWN"
)

var (
	RateSourceDisclosed = RateSource{value: rateSourceDisclosed}
	RateSourceEstimated = RateSource{value: rateSourceEstimated}
	RateSourceUnknown   = RateSource{value: rateSourceUnknown}
)

var validRateSources = map[string]RateSource{
	rateSourceDisclosed: RateSourceDisclosed,
	rateSourceEstimated: RateSourceEstimated,
	rateSourceUnknown:   RateSourceUnknown,
}

// NewRateSource creates a RateSource from a raw string.
func NewRateSource(s string) (RateSource, error) {
	v, ok := validRateSources[s]
	if !ok {
		return RateSource{}, fmt.Errorf("invalid rate source: %q", s)
	}
	return v, nil
}

// String returns the string representation of the rate source.
func (r RateSource) String() string { return r.value }

// IsZero returns true if the rate source has not been initialised.
func (r RateSource) IsZero() bool { return r.value == "" }

// Equal returns true when both rate sources carry the same value.
func (r RateSource) Equal(other RateSource) bool { return r.value == other.value }

// Known reports whether the loan carries a usable rate (disclosed or estimated).
func (r RateSource) Known() bool {
	return r.value == rateSourceDisclosed || r.value == rateSourceEstimated
}
