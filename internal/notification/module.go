// Package notification turns lead lifecycle events into outbound emails.
// It is the only component that talks to the email sender; the lifecycle
// service just publishes events and never learns about delivery.
package notification

import (
	"context"

	"lead_intake_backend/internal/email"
	"lead_intake_backend/internal/events"
	"lead_intake_backend/platform/config"
	"lead_intake_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// Module subscribes to lead domain events and sends the corresponding
// notifications. Delivery is best-effort: failures are logged and swallowed
// so lead persistence never depends on the mail transport.
type Module struct {
	sender email.Sender
	cfg    config.NotificationConfig
	log    *logger.Logger
}

// New creates the notification module.
func New(sender email.Sender, cfg config.NotificationConfig, log *logger.Logger) *Module {
	return &Module{sender: sender, cfg: cfg, log: log}
}

// RegisterHandlers subscribes the module to the lead lifecycle events.
func (m *Module) RegisterHandlers(bus *events.InMemoryBus) {
	bus.Subscribe(events.LeadSubmitted{}.EventName(), m)
	bus.Subscribe(events.LeadReachedOut{}.EventName(), m)
}

// Handle routes events to the appropriate notification. It always returns
// nil: notification failures must not surface to the publishing operation.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.LeadSubmitted:
		m.notifySubmitted(ctx, e)
	case events.LeadReachedOut:
		m.notifyReachedOut(ctx, e)
	}
	return nil
}

// notifySubmitted acknowledges the prospect, then alerts the attorney
// address(es). The prospect email always goes out first.
func (m *Module) notifySubmitted(ctx context.Context, e events.LeadSubmitted) {
	err := m.sender.SendLeadAcknowledgementEmail(ctx, e.Email, e.FirstName)
	m.log.NotificationEvent(e.Email, "lead acknowledgement", err)

	m.fanOutToAttorneys(ctx, "new lead alert", func(addr string) error {
		return m.sender.SendNewLeadAlertEmail(ctx, addr, e.FirstName, e.LastName, e.Email)
	})
}

// notifyReachedOut tells the prospect an attorney engaged, then confirms
// the status change to the attorney address(es), in that order.
func (m *Module) notifyReachedOut(ctx context.Context, e events.LeadReachedOut) {
	err := m.sender.SendAttorneyEngagedEmail(ctx, e.Email, e.FirstName)
	m.log.NotificationEvent(e.Email, "attorney engaged", err)

	m.fanOutToAttorneys(ctx, "reached out alert", func(addr string) error {
		return m.sender.SendReachedOutAlertEmail(ctx, addr, e.FirstName, e.LastName, e.Email)
	})
}

// fanOutToAttorneys sends one notification per configured attorney address
// concurrently and waits for all of them.
func (m *Module) fanOutToAttorneys(_ context.Context, kind string, send func(addr string) error) {
	var g errgroup.Group
	for _, addr := range m.cfg.GetAttorneyEmails() {
		addr := addr
		g.Go(func() error {
			err := send(addr)
			m.log.NotificationEvent(addr, kind, err)
			return nil
		})
	}
	_ = g.Wait()
}

// Compile-time check that Module implements events.Handler.
var _ events.Handler = (*Module)(nil)
