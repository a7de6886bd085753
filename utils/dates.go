package utils

import (
	"fmt"
	"time"
)

// FormatLocalDate renders the calendar date of t in t's own location as
// "YYYY-MM-DD". Converting through UTC first can shift the date by a day for
// zones east or west of UTC, so the date components are read directly.
func FormatLocalDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatClockTime renders an hour/minute pair as "HH:MM:SS" with zero seconds.
func FormatClockTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d:00", hour, minute)
}

// FormatShortClock renders an hour/minute pair as "HH:MM" for display.
func FormatShortClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FormatAmount renders a money amount with two decimals for display.
func FormatAmount(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}
