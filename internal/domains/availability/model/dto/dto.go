package dto

import (
	"eikaiwa/internal/domains/availability/model"
)

type TimeRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type WeeklyEntryResponse struct {
	Day    string              `json:"day"`
	Ranges []TimeRangeResponse `json:"ranges"`
}

type WeeklyScheduleResponse struct {
	Entries []WeeklyEntryResponse `json:"entries"`
}

func (r *WeeklyScheduleResponse) FromModels(entries []model.WeeklyEntry) {
	r.Entries = make([]WeeklyEntryResponse, len(entries))

	for i, entry := range entries {
		ranges := make([]TimeRangeResponse, len(entry.Ranges))
		for j, rng := range entry.Ranges {
			ranges[j] = TimeRangeResponse{Start: rng.Start, End: rng.End}
		}

		r.Entries[i] = WeeklyEntryResponse{Day: entry.Day, Ranges: ranges}
	}
}

// SlotsResponse lists the bookable start times for one date, already-taken
// starts removed.
type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}
