package email

import (
	"context"

	"lead_intake_backend/platform/logger"
)

// LogSender writes every notification to the structured log instead of
// delivering it. It is the default Sender and the one used in tests.
type LogSender struct {
	log *logger.Logger
}

// NewLogSender creates a logging sender.
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) emit(toEmail, subject, body string) error {
	s.log.NotificationEvent(toEmail, subject, nil)
	s.log.Debug("email body", "to", toEmail, "body", body)
	return nil
}

func (s *LogSender) SendLeadAcknowledgementEmail(_ context.Context, toEmail, firstName string) error {
	return s.emit(toEmail, subjectLeadAcknowledgement, leadAcknowledgementBody(firstName))
}

func (s *LogSender) SendNewLeadAlertEmail(_ context.Context, toEmail, firstName, lastName, leadEmail string) error {
	return s.emit(toEmail, subjectNewLeadAlert, newLeadAlertBody(firstName, lastName, leadEmail))
}

func (s *LogSender) SendAttorneyEngagedEmail(_ context.Context, toEmail, firstName string) error {
	return s.emit(toEmail, subjectAttorneyEngaged, attorneyEngagedBody(firstName))
}

func (s *LogSender) SendReachedOutAlertEmail(_ context.Context, toEmail, firstName, lastName, leadEmail string) error {
	return s.emit(toEmail, subjectReachedOutAlert, reachedOutAlertBody(firstName, lastName, leadEmail))
}

// Compile-time check that LogSender implements Sender.
var _ Sender = (*LogSender)(nil)
