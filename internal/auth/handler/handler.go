package handler

import (
	"net/http"

	"lead_intake_backend/internal/auth/service"
	"lead_intake_backend/internal/auth/transport"
	"lead_intake_backend/platform/httpkit"
	"lead_intake_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for authentication.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new auth handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Login authenticates the internal user and returns a bearer token.
// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.svc.Login(req.Username, req.Password)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
