package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"eventdesk/internal/ports/output"
)

var _ output.Mailer = (*SMTPMailer)(nil)

// SMTPMailer sends notification mail over plain SMTP. Subjects and bodies come
// from the i18n bundle under the "mail.<templateKey>" prefix.
type SMTPMailer struct {
	addr       string // host:port
	from       string
	auth       smtp.Auth
	translator output.T
}

func NewSMTPMailer(host string, port int, username, password, from string, translator output.T) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr:       fmt.Sprintf("%s:%d", host, port),
		from:       from,
		auth:       auth,
		translator: translator,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, templateKey, recipient, locale string, data map[string]any) error {
	subject := m.translator.T(locale, "mail."+templateKey+".subject", data)
	body := m.translator.T(locale, "mail."+templateKey+".body", data)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{recipient}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", recipient, err)
	}
	return nil
}
