package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// JST is the fixed UTC+9 offset used to resolve record dates. Record dates are
// always attributed to the Japanese calendar day regardless of server locale.
var JST = time.FixedZone("JST", 9*60*60)

// RecordDate returns the calendar date (YYYY-MM-DD) an instant belongs to,
// resolved in fixed UTC+9.
func RecordDate(t time.Time) string {
	return t.In(JST).Format("2006-01-02")
}

// MinuteOfDay converts an instant to its same-day minute offset using the
// instant's own wall-clock hour/minute fields. Classification is deliberately
// timezone-naive: the caller must construct the instant so that Hour/Minute
// already reflect the local time-of-day.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ParseHHMM parses a schedule time such as "09:00" into a minute-of-day
// offset. The string must contain a colon and both parts must be numeric.
// "9:00" is accepted; "abc", "0900" and "" are not.
func ParseHHMM(s string) (int, error) {
	if !strings.Contains(s, ":") {
		return 0, fmt.Errorf("schedule time %q is missing a colon separator", s)
	}

	parts := strings.SplitN(s, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("schedule time %q has a non-numeric hour: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("schedule time %q has a non-numeric minute: %w", s, err)
	}

	return hour*60 + minute, nil
}

// DateBoundary returns the YYYY-MM-DD string for today minus windowDays,
// resolved in UTC+9. Retention cutoffs are computed here in application code
// and passed to queries as bound parameters, never interpolated into SQL.
func DateBoundary(now time.Time, windowDays int) string {
	return RecordDate(now.AddDate(0, 0, -windowDays))
}
