package tz

import (
	"time"
	_ "time/tzdata"
)

// Pacific is the America/Los_Angeles location (PST/PDT with automatic DST).
var Pacific *time.Location

func init() {
	var err error
	Pacific, err = time.LoadLocation("America/Los_Angeles")
	if err != nil {
		panic("tz: load America/Los_Angeles: " + err.Error())
	}
}

// Date returns the civil date y-m-d as midnight UTC, the representation
// used for event dates.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CivilDate truncates t to its calendar date in loc.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return Date(y, m, d)
}

// At returns the instant at hour:00 on the civil date of day, in loc.
func At(day time.Time, hour int, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, loc)
}
