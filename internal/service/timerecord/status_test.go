package timerecord

import (
	"testing"
	"time"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/timerecord"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 3, 15, hour, minute, 0, 0, time.UTC)
}

func atPtr(hour, minute int) *time.Time {
	t := at(hour, minute)
	return &t
}

func TestDetermineStatus(t *testing.T) {
	tests := []struct {
		name      string
		clockIn   time.Time
		clockOut  *time.Time
		startTime string
		endTime   string
		want      timerecord.Status
	}{
		{
			name:      "on time full day",
			clockIn:   at(8, 55),
			clockOut:  atPtr(17, 0),
			startTime: "09:00",
			endTime:   "17:00",
			want:      timerecord.StatusNormal,
		},
		{
			name:      "exactly on start is not late",
			clockIn:   at(9, 0),
			clockOut:  atPtr(17, 0),
			startTime: "09:00",
			endTime:   "17:00",
			want:      timerecord.StatusNormal,
		},
		{
			name:      "one minute after start is late",
			clockIn:   at(9, 1),
			clockOut:  atPtr(17, 0),
			startTime: "09:00",
			endTime:   "17:00",
			want:      timerecord.StatusLate,
		},
		{
			name:      "exactly on end is neither early nor overtime",
			clockIn:   at(9, 0),
			clockOut:  atPtr(17, 0),
			startTime: "09:00",
			endTime:   "17:00",
			want:      timerecord.StatusNormal,
		},
		{
			name:      "one minute before end is early leave",
			clockIn:   at(9, 0),
			clockOut:  atPtr(16, 59),
			startTime: "09:00",
			endTime:   "17:00",
			want:      timerecord.StatusEarlyLeave,
		},
		{
			name:      "one minute after end is overtime",
			clockIn:   at(9, 0),
			clockOut:  atPtr(17, 1),
			startTime: "09:00",
			endTime:   "17:00",
			want:      timerecord.StatusOvertime,
		},
		{
			name:      "late and early leave combine",
			clockIn:   at(9, 30),
			clockOut:  atPtr(16, 30),
			startTime: "09:00",
			endTime:   "17:00",
			want:      timerecord.StatusLateEarly,
		},
		{
			name:      "late and overtime combine",
			clockIn:   at(9, 30),
			clockOut:  atPtr(18, 0),
			startTime: "09:00",
			endTime:   "17:00",
			want:      timerecord.StatusLateOvertime,
		},
		{
			name:      "open record on time",
			clockIn:   at(8, 30),
			clockOut:  nil,
			startTime: "09:00",
			endTime:   "17:00",
			want:      timerecord.StatusNormal,
		},
		{
			name:      "open record late",
			clockIn:   at(10, 0),
			clockOut:  nil,
			startTime: "09:00",
			endTime:   "17:00",
			want:      timerecord.StatusLate,
		},
		{
			name:      "empty start time",
			clockIn:   at(9, 0),
			clockOut:  atPtr(17, 0),
			startTime: "",
			endTime:   "17:00",
			want:      timerecord.StatusSettingsError,
		},
		{
			name:      "empty end time",
			clockIn:   at(9, 0),
			clockOut:  atPtr(17, 0),
			startTime: "09:00",
			endTime:   "",
			want:      timerecord.StatusSettingsError,
		},
		{
			name:      "start time without colon",
			clockIn:   at(9, 0),
			clockOut:  atPtr(17, 0),
			startTime: "0900",
			endTime:   "17:00",
			want:      timerecord.StatusSettingsError,
		},
		{
			name:      "non numeric end time",
			clockIn:   at(9, 0),
			clockOut:  atPtr(17, 0),
			startTime: "09:00",
			endTime:   "17:xx",
			want:      timerecord.StatusSettingsError,
		},
		{
			name:      "settings error wins over late clock in",
			clockIn:   at(12, 0),
			clockOut:  nil,
			startTime: "abc",
			endTime:   "17:00",
			want:      timerecord.StatusSettingsError,
		},
		{
			name:      "single digit hour schedule",
			clockIn:   at(9, 5),
			clockOut:  atPtr(17, 0),
			startTime: "9:00",
			endTime:   "17:00",
			want:      timerecord.StatusLate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineStatus(tt.clockIn, tt.clockOut, tt.startTime, tt.endTime)
			if got != tt.want {
				t.Errorf("DetermineStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComputeWorkHours(t *testing.T) {
	tests := []struct {
		name     string
		clockIn  time.Time
		clockOut *time.Time
		want     float64
	}{
		{
			name:     "eight hour day",
			clockIn:  at(9, 0),
			clockOut: atPtr(17, 0),
			want:     8,
		},
		{
			name:     "half hour",
			clockIn:  at(9, 0),
			clockOut: atPtr(9, 30),
			want:     0.5,
		},
		{
			name:     "missing clock out",
			clockIn:  at(9, 0),
			clockOut: nil,
			want:     0,
		},
		{
			name:     "clock out equals clock in",
			clockIn:  at(9, 0),
			clockOut: atPtr(9, 0),
			want:     0,
		},
		{
			name:     "clock out before clock in clamps to zero",
			clockIn:  at(17, 0),
			clockOut: atPtr(9, 0),
			want:     0,
		},
		{
			name:     "single minute",
			clockIn:  at(9, 0),
			clockOut: atPtr(9, 1),
			want:     1.0 / 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWorkHours(tt.clockIn, tt.clockOut)
			if got != tt.want {
				t.Errorf("ComputeWorkHours() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeWorkHoursRoundsSeconds(t *testing.T) {
	in := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	out := time.Date(2024, 3, 15, 17, 0, 29, 0, time.UTC)
	if got := ComputeWorkHours(in, &out); got != 8 {
		t.Errorf("ComputeWorkHours() = %v, want 8 (29s rounds down)", got)
	}

	out = time.Date(2024, 3, 15, 17, 0, 30, 0, time.UTC)
	if got := ComputeWorkHours(in, &out); got != 8+1.0/60 {
		t.Errorf("ComputeWorkHours() = %v, want %v (30s rounds up)", got, 8+1.0/60)
	}
}

func TestRoundHours(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{8, 8},
		{7.505, 7.51},
		{1.0 / 60, 0.02},
		{0, 0},
	}
	for _, tt := range tests {
		if got := RoundHours(tt.in); got != tt.want {
			t.Errorf("RoundHours(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
