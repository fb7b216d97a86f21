package timefmt

import (
	"time"

	"eventdesk/pkg/tz"
)

// EventDateTime formats an event start time for user-facing messages,
// in café-local time using the Hungarian date order.
func EventDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Budapest).Format("2006.01.02. 15:04")
}
