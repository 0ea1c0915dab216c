package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date format used across the API and storage.
const DateLayout = "2006-01-02"

// MinutesPerDay bounds a wall-clock minute value.
const MinutesPerDay = 24 * 60

// ParseClock converts "HH:MM" (or "HH:MM:SS", seconds ignored) into minutes
// from midnight.
func ParseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
		}
		nums[i] = n
	}
	h, m := nums[0], nums[1]
	if h > 24 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("time %q out of range", value)
	}
	if len(nums) == 3 && nums[2] > 59 {
		return 0, fmt.Errorf("time %q out of range", value)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate validates a calendar date string and returns its time value.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// RangeLabel renders a human-readable window label, e.g. "09:00 - 10:30".
func RangeLabel(start, end int) string {
	return FormatClock(start) + " - " + FormatClock(end)
}
