package age

import (
	"testing"
	"time"
)

func unix(t time.Time) *int64 {
	v := t.Unix()
	return &v
}

func TestSpan(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	created := now.Add(-10 * time.Minute)

	cases := []struct {
		name    string
		created *int64
		ended   *int64
		want    time.Duration
		ok      bool
	}{
		{name: "open uses now", created: unix(created), want: 10 * time.Minute, ok: true},
		{name: "ended uses end", created: unix(created), ended: unix(created.Add(3 * time.Minute)), want: 3 * time.Minute, ok: true},
		{name: "clamps future created", created: unix(now.Add(time.Minute)), want: 0, ok: true},
		{name: "clamps end before created", created: unix(created), ended: unix(created.Add(-time.Minute)), want: 0, ok: true},
		{name: "unknown created", ended: unix(now), want: 0, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Span(tc.created, tc.ended, now)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("expected (%v, %v), got (%v, %v)", tc.want, tc.ok, got, ok)
			}
		})
	}
}
