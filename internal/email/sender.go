// Package email delivers lead notifications. A Sender composes and sends
// one message per call; delivery is best-effort and the caller decides
// whether a failure matters (for lead notifications it never does).
package email

import (
	"context"

	"lead_intake_backend/platform/config"
	"lead_intake_backend/platform/logger"
)

// Sender is the notification capability consumed by the notification module.
type Sender interface {
	// SendLeadAcknowledgementEmail thanks a prospect for their submission.
	SendLeadAcknowledgementEmail(ctx context.Context, toEmail, firstName string) error
	// SendNewLeadAlertEmail alerts an attorney address about a new lead.
	SendNewLeadAlertEmail(ctx context.Context, toEmail, firstName, lastName, leadEmail string) error
	// SendAttorneyEngagedEmail tells a prospect an attorney has reached out.
	SendAttorneyEngagedEmail(ctx context.Context, toEmail, firstName string) error
	// SendReachedOutAlertEmail confirms the status change to an attorney address.
	SendReachedOutAlertEmail(ctx context.Context, toEmail, firstName, lastName, leadEmail string) error
}

// NewSender selects the SMTP sender when SMTP is configured and enabled,
// and the logging sender otherwise. The logging sender is the default
// operation mode; it records every send and never fails.
func NewSender(cfg config.EmailConfig, log *logger.Logger) Sender {
	if cfg.IsSMTPEnabled() {
		return NewSMTPSender(
			cfg.GetSMTPHost(), cfg.GetSMTPPort(),
			cfg.GetSMTPUsername(), cfg.GetSMTPPassword(),
			cfg.GetEmailFromAddress(), cfg.GetEmailFromName(),
		)
	}
	return NewLogSender(log)
}
