package handler

import (
	"io"
	"net/http"

	"lead_intake_backend/internal/leads/domain"
	"lead_intake_backend/internal/leads/service"
	"lead_intake_backend/internal/leads/transport"
	"lead_intake_backend/platform/httpkit"
	"lead_intake_backend/platform/logger"
	"lead_intake_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler exposes the lead HTTP endpoints.
type Handler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

// Submit accepts a public multipart lead submission. Form shape problems
// are 422; resume content problems (type, size) are 400.
func (h *Handler) Submit(c *gin.Context) {
	var req transport.SubmitLeadRequest
	if err := c.ShouldBind(&req); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, "invalid form data")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, "first_name, last_name and a valid email are required")
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, "resume file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "could not read resume upload")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "could not read resume upload")
		return
	}

	lead, err := h.svc.Submit(c.Request.Context(), service.SubmitInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		ResumeName:    fileHeader.Filename,
		ResumeContent: content,
	})
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.Created(c, lead)
}

// List returns all leads for the authenticated internal user.
func (h *Handler) List(c *gin.Context) {
	if httpkit.MustGetIdentity(c) == nil {
		return
	}

	leads, err := h.svc.List(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, leads)
}

// Get returns a single lead by id.
func (h *Handler) Get(c *gin.Context) {
	if httpkit.MustGetIdentity(c) == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusNotFound, "lead not found")
		return
	}

	lead, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, lead)
}

// UpdateState transitions a lead to the requested state.
func (h *Handler) UpdateState(c *gin.Context) {
	if httpkit.MustGetIdentity(c) == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusNotFound, "lead not found")
		return
	}

	var req transport.UpdateLeadStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, "state is required")
		return
	}

	target, err := domain.ParseState(req.State)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	lead, err := h.svc.UpdateState(c.Request.Context(), id, target)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, lead)
}
