package output

import "context"

// Mailer sends a templated notification to a single recipient. templateKey
// selects the subject/body pair (e.g. "event_reminder"), locale selects the
// language, and data feeds the template placeholders.
type Mailer interface {
	Send(ctx context.Context, templateKey, recipient, locale string, data map[string]any) error
}
