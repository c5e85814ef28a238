package schedule

import (
	"testing"
	"time"

	"teetime/pkg/tz"
)

func TestRollingWindow(t *testing.T) {
	tests := []struct {
		name       string
		now        time.Time
		wantMonday time.Time
	}{
		{
			name:       "midweek stays on current week",
			now:        time.Date(2026, time.October, 14, 9, 0, 0, 0, tz.Pacific),
			wantMonday: tz.Date(2026, time.October, 12),
		},
		{
			name:       "friday just before cutover",
			now:        time.Date(2026, time.October, 16, 17, 59, 59, 0, tz.Pacific),
			wantMonday: tz.Date(2026, time.October, 12),
		},
		{
			name:       "friday at cutover advances",
			now:        time.Date(2026, time.October, 16, 18, 0, 0, 0, tz.Pacific),
			wantMonday: tz.Date(2026, time.October, 19),
		},
		{
			name:       "friday evening pacific is saturday utc",
			now:        time.Date(2026, time.October, 17, 3, 0, 0, 0, time.UTC),
			wantMonday: tz.Date(2026, time.October, 19),
		},
		{
			name:       "sunday advances",
			now:        time.Date(2026, time.October, 18, 12, 0, 0, 0, tz.Pacific),
			wantMonday: tz.Date(2026, time.October, 19),
		},
		{
			name:       "monday morning",
			now:        time.Date(2026, time.October, 19, 0, 30, 0, 0, tz.Pacific),
			wantMonday: tz.Date(2026, time.October, 19),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := RollingWindow(tt.now)
			if !w.Week1Start.Equal(tt.wantMonday) {
				t.Fatalf("week1 start = %s, want %s", w.Week1Start.Format(time.DateOnly), tt.wantMonday.Format(time.DateOnly))
			}
			if !w.Week1End.Equal(tt.wantMonday.AddDate(0, 0, 6)) {
				t.Fatalf("week1 end = %s", w.Week1End.Format(time.DateOnly))
			}
			if !w.Week2Start.Equal(tt.wantMonday.AddDate(0, 0, 7)) {
				t.Fatalf("week2 start = %s", w.Week2Start.Format(time.DateOnly))
			}
			if !w.Week2End.Equal(tt.wantMonday.AddDate(0, 0, 13)) {
				t.Fatalf("week2 end = %s", w.Week2End.Format(time.DateOnly))
			}
		})
	}
}

func TestWindowSlots(t *testing.T) {
	w := RollingWindow(time.Date(2026, time.October, 17, 10, 0, 0, 0, tz.Pacific))
	want := []string{"2026-10-19", "2026-10-21", "2026-10-23", "2026-10-26", "2026-10-28", "2026-10-30"}
	wantDays := []time.Weekday{time.Monday, time.Wednesday, time.Friday, time.Monday, time.Wednesday, time.Friday}

	slots := w.Slots()
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d", len(slots), len(want))
	}
	for i, s := range slots {
		if got := s.Date.Format(time.DateOnly); got != want[i] {
			t.Fatalf("slot %d = %s, want %s", i, got, want[i])
		}
		if s.Weekday != wantDays[i] || s.DayLabel() != wantDays[i].String() {
			t.Fatalf("slot %d weekday = %s, want %s", i, s.Weekday, wantDays[i])
		}
	}
}

func TestWindowWeek(t *testing.T) {
	w := RollingWindow(time.Date(2026, time.October, 14, 9, 0, 0, 0, tz.Pacific))
	start, end, ok := w.Week(1)
	if !ok || !start.Equal(w.Week2Start) || !end.Equal(w.Week2End) {
		t.Fatalf("week(1) = %s..%s ok=%v", start, end, ok)
	}
	if _, _, ok := w.Week(2); ok {
		t.Fatal("week(2) should be rejected")
	}
}
