package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finhogar/loan-engine/pkg/events"
)

func TestNewBaseEvent(t *testing.T) {
	e := events.NewBaseEvent("loan.payment.recorded", "loan-1", "LoanAccount", "owner-1")

	assert.NotEmpty(t, e.EventID())
	assert.Equal(t, "loan.payment.recorded", e.EventType())
	assert.Equal(t, "loan-1", e.AggregateID())
	assert.Equal(t, "LoanAccount", e.AggregateType())
	assert.Equal(t, "owner-1", e.OwnerID())
	assert.False(t, e.OccurredAt().IsZero())

	other := events.NewBaseEvent("loan.payment.recorded", "loan-1", "LoanAccount", "owner-1")
	assert.NotEqual(t, e.EventID(), other.EventID())
}
