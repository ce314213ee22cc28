package timeutil

import (
	"testing"
	"time"
)

func TestRecordDate(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc noon", time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), "2024-03-10"},
		{"utc evening rolls to next jst day", time.Date(2024, 3, 10, 16, 30, 0, 0, time.UTC), "2024-03-11"},
		{"utc 15:00 is jst midnight", time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC), "2024-03-11"},
		{"utc 14:59 is still same jst day", time.Date(2024, 3, 10, 14, 59, 0, 0, time.UTC), "2024-03-10"},
		{"jst instant unchanged", time.Date(2024, 3, 10, 23, 45, 0, 0, JST), "2024-03-10"},
	}
	for _, c := range cases {
		if got := RecordDate(c.in); got != c.want {
			t.Errorf("%s: RecordDate(%v) = %q, want %q", c.name, c.in, got, c.want)
		}
	}
}

func TestMinuteOfDay(t *testing.T) {
	// MinuteOfDay reads wall-clock fields, so the same absolute instant gives
	// different offsets in different zones.
	utc := time.Date(2024, 3, 10, 9, 5, 30, 0, time.UTC)
	if got := MinuteOfDay(utc); got != 9*60+5 {
		t.Errorf("MinuteOfDay(09:05 UTC) = %d, want %d", got, 9*60+5)
	}
	jst := utc.In(JST)
	if got := MinuteOfDay(jst); got != 18*60+5 {
		t.Errorf("MinuteOfDay(18:05 JST) = %d, want %d", got, 18*60+5)
	}
}

func TestParseHHMM(t *testing.T) {
	valid := []struct {
		in   string
		want int
	}{
		{"09:00", 540},
		{"9:00", 540},
		{"17:30", 1050},
		{"00:00", 0},
	}
	for _, c := range valid {
		got, err := ParseHHMM(c.in)
		if err != nil {
			t.Errorf("ParseHHMM(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseHHMM(%q) = %d, want %d", c.in, got, c.want)
		}
	}

	invalid := []string{"", "abc", "0900", "ab:00", "09:cd"}
	for _, in := range invalid {
		if _, err := ParseHHMM(in); err == nil {
			t.Errorf("ParseHHMM(%q) succeeded, want error", in)
		}
	}
}

func TestDateBoundary(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, JST)
	if got := DateBoundary(now, 30); got != "2024-03-01" {
		t.Errorf("DateBoundary(30) = %q, want %q", got, "2024-03-01")
	}
	if got := DateBoundary(now, 0); got != "2024-03-31" {
		t.Errorf("DateBoundary(0) = %q, want %q", got, "2024-03-31")
	}
}
