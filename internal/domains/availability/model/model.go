package model

import (
	"time"
)

const (
	EntityName = "availability"

	// CMSEndpoint is the headless-CMS list endpoint holding the weekly table.
	CMSEndpoint = "weekly-availability"
)

// TimeRange is a wall-clock interval within one day, "HH:mm" 24-hour zero-padded,
// start strictly before end. Ranges within a day are authored non-overlapping.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklyEntry lists the bookable ranges for one weekday. A weekday without an
// entry is unbookable.
type WeeklyEntry struct {
	Day    string      `json:"day"`
	Ranges []TimeRange `json:"ranges"`
}

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// DayName maps a calendar date to the day identifier used by the CMS entries.
func DayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}
