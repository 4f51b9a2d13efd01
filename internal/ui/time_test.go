package ui

import (
	"testing"
	"time"
)

func TestFormatDurationShort(t *testing.T) {
	cases := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "negative", duration: -time.Minute, want: "0s"},
		{name: "seconds", duration: 45 * time.Second, want: "45s"},
		{name: "minutes", duration: 2*time.Minute + 10*time.Second, want: "2m"},
		{name: "hours", duration: 3*time.Hour + 5*time.Minute, want: "3h"},
		{name: "days", duration: 48 * time.Hour, want: "2d"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatDurationShort(tc.duration)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	then := now.Add(-2 * time.Minute)

	got := FormatTimeAgo(then, now)
	if got != "2m ago" {
		t.Fatalf("expected 2m ago, got %s", got)
	}
	if got := FormatTimeAgo(time.Time{}, now); got != "-" {
		t.Fatalf("expected - for zero time, got %s", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2026, 1, 20, 10, 30, 0, 0, time.UTC).Unix()

	got := FormatTimestamp(&ts, "2006-01-02 15:04:05", time.UTC)
	if got != "2026-01-20 10:30:00" {
		t.Fatalf("expected formatted UTC time, got %q", got)
	}
	if got := FormatTimestamp(nil, time.RFC3339, time.UTC); got != "" {
		t.Fatalf("expected empty string for nil timestamp, got %q", got)
	}
}
