// Package auth provides the credential and token bounded context.
// The only principal is the internal user configured at startup.
package auth

import (
	"lead_intake_backend/internal/auth/handler"
	"lead_intake_backend/internal/auth/service"
	apphttp "lead_intake_backend/internal/http"
	"lead_intake_backend/platform/config"
	"lead_intake_backend/platform/logger"
	"lead_intake_backend/platform/validator"
)

// Module is the auth bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the auth module.
func NewModule(cfg config.AuthConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(cfg, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// Service returns the credential service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the auth routes. Login gets the stricter rate limit.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/auth")
	group.Use(ctx.AuthRateLimiter.RateLimit())
	group.POST("/login", m.handler.Login)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
