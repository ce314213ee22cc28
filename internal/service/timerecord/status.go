package timerecord

import (
	"strings"
	"time"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/timerecord"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

// DetermineStatus classifies a clock-in/clock-out pair against the configured
// work window. Comparison happens on same-day minute offsets read from the
// instants' wall-clock fields, so callers must pass instants whose Hour/Minute
// already represent the local time-of-day.
//
// Rules:
//   - malformed start/end ("", no colon, non-numeric parts) yields
//     SettingsError regardless of the clock values
//   - late means clock-in strictly after the scheduled start
//   - without a clock-out only Normal or Late are possible
//   - with a clock-out, strictly before the scheduled end is early-leave and
//     strictly after is overtime; an exact match is neither. Early-leave is
//     checked first, which fixes the tie-break should both ever hold.
func DetermineStatus(clockIn time.Time, clockOut *time.Time, startTime, endTime string) timerecord.Status {
	startMinutes, err := timeutil.ParseHHMM(startTime)
	if err != nil {
		return timerecord.StatusSettingsError
	}
	endMinutes, err := timeutil.ParseHHMM(endTime)
	if err != nil {
		return timerecord.StatusSettingsError
	}

	isLate := timeutil.MinuteOfDay(clockIn) > startMinutes

	var parts []string
	if isLate {
		parts = append(parts, string(timerecord.StatusLate))
	}

	if clockOut != nil {
		outMinutes := timeutil.MinuteOfDay(*clockOut)
		if outMinutes < endMinutes {
			parts = append(parts, string(timerecord.StatusEarlyLeave))
		} else if outMinutes > endMinutes {
			parts = append(parts, string(timerecord.StatusOvertime))
		}
	}

	if len(parts) == 0 {
		return timerecord.StatusNormal
	}
	return timerecord.Status(strings.Join(parts, timerecord.StatusSeparator))
}

// ComputeWorkHours returns the elapsed time between clock-in and clock-out in
// hours, rounded to the nearest whole minute first to avoid fractional drift.
// A missing clock-out, or a clock-out at or before clock-in, yields 0.
func ComputeWorkHours(clockIn time.Time, clockOut *time.Time) float64 {
	if clockOut == nil {
		return 0
	}

	minutes := clockOut.Sub(clockIn).Round(time.Minute).Minutes()
	if minutes <= 0 {
		return 0
	}
	return minutes / 60
}

// RoundHours rounds a work-hours value to 2 decimal places for external
// reporting. Stored values keep full minute precision.
func RoundHours(hours float64) float64 {
	rounded, _ := decimal.NewFromFloat(hours).Round(2).Float64()
	return rounded
}
