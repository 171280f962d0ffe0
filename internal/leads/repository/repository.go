package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lead_intake_backend/internal/leads/domain"
	"lead_intake_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const leadNotFoundMessage = "lead not found"

const leadColumns = "id, first_name, last_name, email, resume_path, state, created_at, updated_at"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lead repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a new lead.
func (r *Repo) Create(ctx context.Context, lead Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		lead.ID, lead.FirstName, lead.LastName, lead.Email,
		lead.ResumePath, string(lead.State), lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

// GetByID retrieves a lead by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return Lead{}, fmt.Errorf("get lead by id: %w", err)
	}
	return lead, nil
}

// List retrieves all leads, newest first.
func (r *Repo) List(ctx context.Context) ([]Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

// UpdateState performs the compare-and-set transition. The WHERE clause
// pins the expected current state, so a concurrent transition that already
// moved the lead makes this update match zero rows.
func (r *Repo) UpdateState(ctx context.Context, id uuid.UUID, from, to domain.State, updatedAt time.Time) (Lead, error) {
	query := `
		UPDATE leads
		SET state = $3, updated_at = $4
		WHERE id = $1 AND state = $2
		RETURNING ` + leadColumns

	lead, err := scanLead(r.pool.QueryRow(ctx, query, id, string(from), string(to), updatedAt))
	if err == nil {
		return lead, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, fmt.Errorf("update lead state: %w", err)
	}

	// Zero rows: either the lead does not exist or it is no longer in the
	// expected state. Re-read to report the right error.
	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return Lead{}, getErr
	}
	return Lead{}, apperr.InvalidTransition(fmt.Sprintf(
		"lead is in state %s, expected %s", current.State, from))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (Lead, error) {
	var lead Lead
	var state string
	err := row.Scan(
		&lead.ID, &lead.FirstName, &lead.LastName, &lead.Email,
		&lead.ResumePath, &state, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		return Lead{}, err
	}
	lead.State = domain.State(state)
	return lead, nil
}
