// Package leads wires the lead intake vertical: public submission and
// the internal review endpoints.
package leads

import (
	"lead_intake_backend/internal/events"
	apphttp "lead_intake_backend/internal/http"
	"lead_intake_backend/internal/leads/handler"
	"lead_intake_backend/internal/leads/repository"
	"lead_intake_backend/internal/leads/service"
	"lead_intake_backend/internal/storage"
	"lead_intake_backend/platform/logger"
	"lead_intake_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module bundles the lead intake routes and their dependencies.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule constructs the lead vertical against a Postgres pool.
func NewModule(pool *pgxpool.Pool, resumes *storage.Service, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, resumes, bus, log)
	return &Module{
		handler: handler.New(svc, val, log),
		service: svc,
	}
}

// NewModuleWithRepository constructs the lead vertical over any
// repository implementation. Used with the in-memory repository in tests.
func NewModuleWithRepository(repo repository.Repository, resumes *storage.Service, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repo, resumes, bus, log)
	return &Module{
		handler: handler.New(svc, val, log),
		service: svc,
	}
}

func (m *Module) Name() string { return "leads" }

// Service exposes the lifecycle service for composition.
func (m *Module) Service() *service.Service { return m.service }

// RegisterRoutes mounts the public submission endpoint on the open API
// group and the review endpoints behind authentication.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/leads", m.handler.Submit)

	ctx.Protected.GET("/leads", m.handler.List)
	ctx.Protected.GET("/leads/:id", m.handler.Get)
	ctx.Protected.PATCH("/leads/:id", m.handler.UpdateState)
}

var _ apphttp.Module = (*Module)(nil)
