// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"lead_intake_backend/platform/events"
	"lead_intake_backend/platform/logger"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// LeadSubmitted is published after a new lead has been persisted.
type LeadSubmitted struct {
	BaseEvent
	LeadID    uuid.UUID `json:"leadId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

func (e LeadSubmitted) EventName() string { return "leads.lead.submitted" }

// LeadReachedOut is published after a lead has transitioned to REACHED_OUT.
type LeadReachedOut struct {
	BaseEvent
	LeadID    uuid.UUID `json:"leadId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

func (e LeadReachedOut) EventName() string { return "leads.lead.reached_out" }
