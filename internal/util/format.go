package util

import "time"

// FormatClock formats t as the 24-hour hh:mm shown in the status bar.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}
