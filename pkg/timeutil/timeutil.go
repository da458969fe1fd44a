// Package timeutil provides small helpers for formatting durations in log output.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration the way the npm debug package does:
// sub-millisecond values render as microseconds, then milliseconds,
// seconds and minutes, always with a single unit.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
}
