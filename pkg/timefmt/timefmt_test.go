package timefmt

import (
	"testing"
	"time"
)

func TestEventDateTime(t *testing.T) {
	// 18:00 UTC in summer is 20:00 in Budapest (CEST).
	summer := time.Date(2026, time.July, 10, 18, 0, 0, 0, time.UTC)
	if got := EventDateTime(summer); got != "2026.07.10. 20:00" {
		t.Errorf("summer: got %q", got)
	}

	// 18:00 UTC in winter is 19:00 in Budapest (CET).
	winter := time.Date(2026, time.January, 10, 18, 0, 0, 0, time.UTC)
	if got := EventDateTime(winter); got != "2026.01.10. 19:00" {
		t.Errorf("winter: got %q", got)
	}
}

func TestEventDateTimeZero(t *testing.T) {
	if got := EventDateTime(time.Time{}); got != "" {
		t.Errorf("expected empty string for zero time, got %q", got)
	}
}
