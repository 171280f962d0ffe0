package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"lead_intake_backend/internal/leads/domain"
	"lead_intake_backend/platform/apperr"

	"github.com/google/uuid"
)

// Memory is a mutex-guarded in-memory Repository with the same
// compare-and-set semantics as the Postgres implementation. It backs tests
// and local development without a database.
type Memory struct {
	mu    sync.Mutex
	leads map[uuid.UUID]Lead
	order []uuid.UUID
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{leads: make(map[uuid.UUID]Lead)}
}

// Compile-time check that Memory implements Repository.
var _ Repository = (*Memory)(nil)

// Create inserts a new lead.
func (m *Memory) Create(_ context.Context, lead Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.leads[lead.ID]; exists {
		return fmt.Errorf("create lead: duplicate id %s", lead.ID)
	}
	m.leads[lead.ID] = lead
	m.order = append(m.order, lead.ID)
	return nil
}

// GetByID retrieves a lead by its ID.
func (m *Memory) GetByID(_ context.Context, id uuid.UUID) (Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lead, ok := m.leads[id]
	if !ok {
		return Lead{}, apperr.NotFound(leadNotFoundMessage)
	}
	return lead, nil
}

// List retrieves all leads, newest first. Insertion order breaks ties
// between equal timestamps, latest insert first.
func (m *Memory) List(_ context.Context) ([]Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Lead, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, m.leads[m.order[i]])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateState performs the compare-and-set transition under the lock.
func (m *Memory) UpdateState(_ context.Context, id uuid.UUID, from, to domain.State, updatedAt time.Time) (Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lead, ok := m.leads[id]
	if !ok {
		return Lead{}, apperr.NotFound(leadNotFoundMessage)
	}
	if lead.State != from {
		return Lead{}, apperr.InvalidTransition(fmt.Sprintf(
			"lead is in state %s, expected %s", lead.State, from))
	}

	lead.State = to
	lead.UpdatedAt = updatedAt
	m.leads[id] = lead
	return lead, nil
}
