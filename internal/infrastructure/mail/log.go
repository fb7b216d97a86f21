package mail

import (
	"context"

	"github.com/rs/zerolog/log"

	"eventdesk/internal/ports/output"
)

var _ output.Mailer = (*LogMailer)(nil)

// LogMailer writes mail to the log instead of delivering it. Used in local
// development when no SMTP host is configured.
type LogMailer struct {
	translator output.T
}

func NewLogMailer(translator output.T) *LogMailer {
	return &LogMailer{translator: translator}
}

func (m *LogMailer) Send(ctx context.Context, templateKey, recipient, locale string, data map[string]any) error {
	subject := m.translator.T(locale, "mail."+templateKey+".subject", data)
	log.Info().Str("to", recipient).Str("template", templateKey).Str("subject", subject).
		Msg("mail (log only)")
	return nil
}
