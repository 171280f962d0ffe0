// Package transport defines the leads module's request and response shapes.
package transport

import "time"

// SubmitLeadRequest carries the multipart form fields of a public
// submission. The resume file part is read separately by the handler.
type SubmitLeadRequest struct {
	FirstName string `form:"first_name" validate:"required"`
	LastName  string `form:"last_name" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
}

// UpdateLeadStateRequest is the PATCH body for a state transition.
type UpdateLeadStateRequest struct {
	State string `json:"state" validate:"required"`
}

// LeadResponse is the lead as exposed over HTTP.
type LeadResponse struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	ResumePath *string   `json:"resume_path,omitempty"`
	State      string    `json:"state"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
