// Package repository persists leads. The contract is consumed by the
// lifecycle service; implementations exist for Postgres and for memory.
package repository

import (
	"context"
	"time"

	"lead_intake_backend/internal/leads/domain"

	"github.com/google/uuid"
)

// Lead is the persisted lead record.
type Lead struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	Email      string
	ResumePath *string
	State      domain.State
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Repository is the lead store contract. A Get immediately following a
// Create or UpdateState on the same id observes the just-written values.
type Repository interface {
	// Create inserts a new lead.
	Create(ctx context.Context, lead Lead) error

	// GetByID returns the lead or an apperr.NotFound error.
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)

	// List returns all leads ordered by creation time, newest first.
	List(ctx context.Context) ([]Lead, error)

	// UpdateState moves the lead from the expected current state to the
	// target state and touches updated_at. The write is a compare-and-set
	// on the expected state: of two concurrent calls only one succeeds and
	// the other gets an apperr.InvalidTransition error. Unknown ids get
	// apperr.NotFound.
	UpdateState(ctx context.Context, id uuid.UUID, from, to domain.State, updatedAt time.Time) (Lead, error)
}
