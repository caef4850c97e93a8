package util

import (
	"fmt"
	"time"
)

// FormatAge returns a compact kubectl-style age string using the
// largest applicable unit of days, hours, minutes or seconds.
func FormatAge(created, now time.Time) string {
	duration := now.Sub(created)

	days := int(duration.Hours() / 24)
	hours := int(duration.Hours()) % 24
	minutes := int(duration.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd", days)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%ds", int(duration.Seconds()))
}
