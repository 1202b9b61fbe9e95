package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhogar/loan-engine/internal/domain/valueobject"
)

func TestNewPrepaymentPolicy(t *testing.T) {
	policy, err := valueobject.NewPrepaymentPolicy("REDUCE_TERM")
	require.NoError(t, err)
	assert.True(t, policy.Equal(valueobject.PrepaymentPolicyReduceTerm))
	assert.Equal(t, "REDUCE_TERM", policy.String())

	_, err = valueobject.NewPrepaymentPolicy("reduce_term")
	assert.Error(t, err)

	assert.True(t, valueobject.PrepaymentPolicy{}.IsZero())
	assert.False(t, valueobject.PrepaymentPolicyReduceInstallment.IsZero())
}

func TestNewRateSource(t *testing.T) {
	for _, s := range []string{"DISCLOSED", "ESTIMATED", "UNKNOWN"} {
		src, err := valueobject.NewRateSource(s)
		require.NoError(t, err)
		assert.Equal(t, s, src.String())
	}

	_, err := valueobject.NewRateSource("GUESSED")
	assert.Error(t, err)
}

func TestRateSource_Known(t *testing.T) {
	assert.True(t, valueobject.RateSourceDisclosed.Known())
	assert.True(t, valueobject.RateSourceEstimated.Known())
	assert.False(t, valueobject.RateSourceUnknown.Known())
	assert.False(t, valueobject.RateSource{}.Known())
}

func TestNewLoanKind(t *testing.T) {
	kind, err := valueobject.NewLoanKind("MORTGAGE")
	require.NoError(t, err)
	assert.True(t, kind.Equal(valueobject.LoanKindMortgage))

	_, err = valueobject.NewLoanKind("BOAT")
	assert.Error(t, err)
}

func TestNewScheduleSource(t *testing.T) {
	src, err := valueobject.NewScheduleSource("IMPORTED")
	require.NoError(t, err)
	assert.True(t, src.Equal(valueobject.ScheduleSourceImported))

	_, err = valueobject.NewScheduleSource("")
	assert.Error(t, err)
}
