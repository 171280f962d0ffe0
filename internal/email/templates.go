package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// All lead notifications share one layout: a heading and a short body.
var emailTemplate = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body style="font-family: sans-serif; color: #1a1a1a;">
  <h2>{{.Title}}</h2>
  <p>{{.Body}}</p>
</body>
</html>`))

type emailData struct {
	Title string
	Body  string
}

func renderEmail(title, body string) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, emailData{Title: title, Body: body}); err != nil {
		return "", fmt.Errorf("render email %q: %w", title, err)
	}
	return buf.String(), nil
}

func leadAcknowledgementBody(firstName string) string {
	return fmt.Sprintf("Hi %s, we have received your information and will be in touch soon.", firstName)
}

func newLeadAlertBody(firstName, lastName, leadEmail string) string {
	return fmt.Sprintf("New lead: %s %s (%s)", firstName, lastName, leadEmail)
}

func attorneyEngagedBody(firstName string) string {
	return fmt.Sprintf("Hi %s, an attorney has reviewed your case and will be in contact shortly.", firstName)
}

func reachedOutAlertBody(firstName, lastName, leadEmail string) string {
	return fmt.Sprintf("Lead %s %s (%s) has been marked as REACHED_OUT.", firstName, lastName, leadEmail)
}
