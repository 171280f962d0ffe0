package email

import (
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender delivers notifications over a direct SMTP connection via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPSender) sendRendered(ctx context.Context, toEmail, subject, body string) error {
	content, err := renderEmail(subject, body)
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content)
}

func (s *SMTPSender) SendLeadAcknowledgementEmail(ctx context.Context, toEmail, firstName string) error {
	return s.sendRendered(ctx, toEmail, subjectLeadAcknowledgement, leadAcknowledgementBody(firstName))
}

func (s *SMTPSender) SendNewLeadAlertEmail(ctx context.Context, toEmail, firstName, lastName, leadEmail string) error {
	return s.sendRendered(ctx, toEmail, subjectNewLeadAlert, newLeadAlertBody(firstName, lastName, leadEmail))
}

func (s *SMTPSender) SendAttorneyEngagedEmail(ctx context.Context, toEmail, firstName string) error {
	return s.sendRendered(ctx, toEmail, subjectAttorneyEngaged, attorneyEngagedBody(firstName))
}

func (s *SMTPSender) SendReachedOutAlertEmail(ctx context.Context, toEmail, firstName, lastName, leadEmail string) error {
	return s.sendRendered(ctx, toEmail, subjectReachedOutAlert, reachedOutAlertBody(firstName, lastName, leadEmail))
}

// Compile-time check that SMTPSender implements Sender.
var _ Sender = (*SMTPSender)(nil)
