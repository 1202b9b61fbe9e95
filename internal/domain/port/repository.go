package port

import (
	"context"

	"github.com/finhogar/loan-engine/internal/domain/event"
	"github.com/finhogar/loan-engine/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// LoanAccountRepository persists and retrieves loan accounts. The engine
// itself performs no I/O; concurrent mutations against a given loan are
// serialized by the repository's version guard.
type LoanAccountRepository interface {
	Save(ctx context.Context, loan model.LoanAccount) error
	FindByID(ctx context.Context, ownerID, id string) (model.LoanAccount, error)
	FindByOwnerID(ctx context.Context, ownerID string) ([]model.LoanAccount, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
