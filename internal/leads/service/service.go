// Package service orchestrates the lead lifecycle: submission, lookup,
// listing, and the single PENDING → REACHED_OUT transition.
package service

import (
	"context"
	"time"

	"lead_intake_backend/internal/events"
	"lead_intake_backend/internal/leads/domain"
	"lead_intake_backend/internal/leads/repository"
	"lead_intake_backend/internal/leads/transport"
	"lead_intake_backend/platform/logger"

	"github.com/google/uuid"
)

// ResumeStore validates and persists an uploaded resume, returning its
// storage path. Implemented by the storage service.
type ResumeStore interface {
	SaveResume(ctx context.Context, filename string, content []byte) (string, error)
}

// Service provides the lead lifecycle operations.
type Service struct {
	repo    repository.Repository
	resumes ResumeStore
	bus     events.Bus
	log     *logger.Logger
}

// New creates the lead lifecycle service.
func New(repo repository.Repository, resumes ResumeStore, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, resumes: resumes, bus: bus, log: log}
}

// SubmitInput is a validated public submission. Resume content is present
// whenever a file part was uploaded; the handler enforces the upload policy.
type SubmitInput struct {
	FirstName     string
	LastName      string
	Email         string
	ResumeName    string
	ResumeContent []byte
}

// Submit validates and stores the resume, persists a new PENDING lead, and
// publishes LeadSubmitted. Resume validation happens fully before any
// write: a rejected resume leaves no file and no lead behind. Notification
// side effects ride on the event and never fail the submission.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (transport.LeadResponse, error) {
	var resumePath *string
	if in.ResumeName != "" || len(in.ResumeContent) > 0 {
		path, err := s.resumes.SaveResume(ctx, in.ResumeName, in.ResumeContent)
		if err != nil {
			return transport.LeadResponse{}, err
		}
		resumePath = &path
	}

	now := time.Now().UTC()
	lead := repository.Lead{
		ID:         uuid.New(),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		ResumePath: resumePath,
		State:      domain.StatePending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return transport.LeadResponse{}, err
	}
	s.log.Info("lead submitted", "id", lead.ID, "email", lead.Email)

	s.publish(ctx, events.LeadSubmitted{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
		Email:     lead.Email,
	})

	return toResponse(lead), nil
}

// Get retrieves a single lead.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LeadResponse{}, err
	}
	return toResponse(lead), nil
}

// List returns all leads, newest first.
func (s *Service) List(ctx context.Context) ([]transport.LeadResponse, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]transport.LeadResponse, len(leads))
	for i, lead := range leads {
		out[i] = toResponse(lead)
	}
	return out, nil
}

// UpdateState transitions the lead to the requested target state. Both
// ends of the edge are checked explicitly before the write, and the write
// itself re-checks the current state, so a concurrent transition on the
// same lead cannot succeed twice.
func (s *Service) UpdateState(ctx context.Context, id uuid.UUID, target domain.State) (transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	if err := domain.ValidateTransition(lead.State, target); err != nil {
		return transport.LeadResponse{}, err
	}

	updated, err := s.repo.UpdateState(ctx, id, lead.State, target, time.Now().UTC())
	if err != nil {
		return transport.LeadResponse{}, err
	}
	s.log.Info("lead state updated", "id", id, "state", updated.State)

	s.publish(ctx, events.LeadReachedOut{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    updated.ID,
		FirstName: updated.FirstName,
		LastName:  updated.LastName,
		Email:     updated.Email,
	})

	return toResponse(updated), nil
}

// publish dispatches an event synchronously; handler failures are logged
// and dropped so they cannot fail the lifecycle operation.
func (s *Service) publish(ctx context.Context, event events.Event) {
	if err := s.bus.PublishSync(ctx, event); err != nil {
		s.log.Warn("event handler failed", "event", event.EventName(), "error", err.Error())
	}
}

func toResponse(lead repository.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:         lead.ID.String(),
		FirstName:  lead.FirstName,
		LastName:   lead.LastName,
		Email:      lead.Email,
		ResumePath: lead.ResumePath,
		State:      string(lead.State),
		CreatedAt:  lead.CreatedAt,
		UpdatedAt:  lead.UpdatedAt,
	}
}
