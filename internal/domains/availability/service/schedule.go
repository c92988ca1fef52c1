package service

import (
	"eikaiwa/internal/domains/availability/model"
	"eikaiwa/shared/constant"
	"eikaiwa/shared/timezone"
	"time"
)

// ExpandSlots turns the weekly table into the bookable start times for one
// calendar date. Slots step on the fixed 60-minute grid from each range start
// and are emitted while strictly before the range end, so a range shorter than
// the grid yields nothing. A date whose weekday has no entry yields nil.
//
// Pure function of its inputs; the picker and the booking flow both rely on
// calling it repeatedly with identical results.
func ExpandSlots(date time.Time, entries []model.WeeklyEntry) []string {
	day := model.DayName(date)

	for _, entry := range entries {
		if entry.Day != day {
			continue
		}

		var slots []string

		for _, rng := range entry.Ranges {
			start, err := time.Parse(constant.ClockFormat, rng.Start)
			if err != nil {
				continue
			}

			end, err := time.Parse(constant.ClockFormat, rng.End)
			if err != nil {
				continue
			}

			for t := start; t.Before(end); t = t.Add(constant.SlotIntervalMinutes * time.Minute) {
				slots = append(slots, t.Format(constant.ClockFormat))
			}
		}

		return slots
	}

	return nil
}

// SlotStart anchors an "HH:mm" slot on a calendar date in the application timezone.
func SlotStart(date time.Time, slot string) (time.Time, error) {
	return timezone.Parse(constant.CalendarFormat+" "+constant.ClockFormat, date.Format(constant.CalendarFormat)+" "+slot)
}
