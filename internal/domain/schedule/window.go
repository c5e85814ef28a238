package schedule

import (
	"time"

	"teetime/pkg/tz"
)

// Slot is one weekly occurrence day that becomes an event once materialized.
type Slot struct {
	Date    time.Time
	Weekday time.Weekday
}

// DayLabel is the stored weekday label ("Monday", ...).
func (s Slot) DayLabel() string { return s.Weekday.String() }

// slotOffsets are the Monday-relative offsets of the weekly slots.
var slotOffsets = []int{0, 2, 4} // Monday, Wednesday, Friday

// Window is the rolling two-week span, both weeks Monday..Sunday inclusive.
type Window struct {
	Week1Start time.Time
	Week1End   time.Time
	Week2Start time.Time
	Week2End   time.Time
}

// RollingWindow computes the window active at now. Once Friday 18:00
// Pacific of the current week has passed, the window starts next Monday.
func RollingWindow(now time.Time) Window {
	today := tz.CivilDate(now, tz.Pacific)
	sinceMonday := (int(today.Weekday()) + 6) % 7
	monday := today.AddDate(0, 0, -sinceMonday)

	fridayCutover := tz.At(monday.AddDate(0, 0, 4), cutoffHour, tz.Pacific)
	if !now.Before(fridayCutover) {
		monday = monday.AddDate(0, 0, 7)
	}

	return Window{
		Week1Start: monday,
		Week1End:   monday.AddDate(0, 0, 6),
		Week2Start: monday.AddDate(0, 0, 7),
		Week2End:   monday.AddDate(0, 0, 13),
	}
}

// Week returns the bounds of week 0 or 1 of the window.
func (w Window) Week(offset int) (start, end time.Time, ok bool) {
	switch offset {
	case 0:
		return w.Week1Start, w.Week1End, true
	case 1:
		return w.Week2Start, w.Week2End, true
	}
	return time.Time{}, time.Time{}, false
}

// Slots lists the six slot dates of the window in date order.
func (w Window) Slots() []Slot {
	slots := make([]Slot, 0, 2*len(slotOffsets))
	for _, start := range []time.Time{w.Week1Start, w.Week2Start} {
		for _, off := range slotOffsets {
			d := start.AddDate(0, 0, off)
			slots = append(slots, Slot{Date: d, Weekday: d.Weekday()})
		}
	}
	return slots
}
