package schedule

import (
	"testing"
	"time"

	"teetime/pkg/tz"
)

func TestSignupCutoffWeekdayOffsets(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		days int
	}{
		{name: "monday", date: tz.Date(2026, time.October, 19), days: 5},
		{name: "wednesday", date: tz.Date(2026, time.October, 21), days: 7},
		{name: "friday", date: tz.Date(2026, time.October, 23), days: 9},
		{name: "monday after dst ends", date: tz.Date(2026, time.November, 9), days: 5},
		{name: "friday across year end", date: tz.Date(2027, time.January, 1), days: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cutoff := SignupCutoff(tt.date)
			local := cutoff.In(tz.Pacific)
			if local.Weekday() != time.Wednesday {
				t.Fatalf("cutoff weekday = %s, want Wednesday", local.Weekday())
			}
			if local.Hour() != 18 || local.Minute() != 0 {
				t.Fatalf("cutoff time = %s, want 18:00", local.Format("15:04"))
			}
			if !cutoff.Before(tt.date) {
				t.Fatalf("cutoff %s not before event date %s", cutoff, tt.date)
			}
			gotDays := int(tt.date.Sub(tz.CivilDate(cutoff, tz.Pacific)).Hours() / 24)
			if gotDays != tt.days {
				t.Fatalf("offset = %d days, want %d", gotDays, tt.days)
			}
		})
	}
}

func TestSignupCutoffUsesDateSpecificOffset(t *testing.T) {
	// PDT (UTC-7) before the November change, PST (UTC-8) after.
	summer := SignupCutoff(tz.Date(2026, time.October, 19))
	if want := time.Date(2026, time.October, 15, 1, 0, 0, 0, time.UTC); !summer.Equal(want) {
		t.Fatalf("summer cutoff = %s, want %s", summer.UTC(), want)
	}
	winter := SignupCutoff(tz.Date(2026, time.November, 9))
	if want := time.Date(2026, time.November, 5, 2, 0, 0, 0, time.UTC); !winter.Equal(want) {
		t.Fatalf("winter cutoff = %s, want %s", winter.UTC(), want)
	}
}

func TestSignupCutoffUnsupportedWeekdayFallsBackToSevenDays(t *testing.T) {
	tuesday := tz.Date(2026, time.October, 20)
	want := time.Date(2026, time.October, 13, 18, 0, 0, 0, tz.Pacific)
	if got := SignupCutoff(tuesday); !got.Equal(want) {
		t.Fatalf("cutoff = %s, want %s", got, want)
	}
}

func TestCancellationDeadline(t *testing.T) {
	got := CancellationDeadline(tz.Date(2026, time.October, 21))
	want := time.Date(2026, time.October, 20, 15, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("deadline = %s, want %s", got.UTC(), want)
	}

	// 2026-11-01 is the DST fall-back day; 08:00 is already PST.
	got = CancellationDeadline(tz.Date(2026, time.November, 2))
	want = time.Date(2026, time.November, 1, 16, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("deadline = %s, want %s", got.UTC(), want)
	}
}

func TestForIsDeterministic(t *testing.T) {
	date := tz.Date(2026, time.October, 23)
	a, b := For(date), For(date)
	if !a.SignupCutoff.Equal(b.SignupCutoff) || !a.CancellationDeadline.Equal(b.CancellationDeadline) {
		t.Fatalf("deadlines differ across calls: %+v vs %+v", a, b)
	}
	if !a.SignupCutoff.Before(a.CancellationDeadline) {
		t.Fatalf("cutoff %s should precede cancellation deadline %s", a.SignupCutoff, a.CancellationDeadline)
	}
}
