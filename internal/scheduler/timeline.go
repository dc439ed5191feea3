package scheduler

import (
	"sort"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

// Span is a Gantt row for the installer dashboard: an assignment clamped to
// the requested window, expressed as a day offset and length within it.
type Span struct {
	Assignment *domain.Assignment `json:"assignment"`
	Offset     int                `json:"offset"`
	Length     int                `json:"length"`
	ClampedL   bool               `json:"clampedLeft"`
	ClampedR   bool               `json:"clampedRight"`
}

// Timeline lays out assignments inside the inclusive window
// [windowStart, windowEnd]. Assignments entirely outside the window are
// dropped; the rest are clamped to its edges. Rows come back sorted by start
// date, then team, so the dashboard renders deterministically.
func Timeline(assignments []*domain.Assignment, windowStart, windowEnd domain.Date) []Span {
	spans := []Span{}
	if windowStart.After(windowEnd) {
		return spans
	}

	for _, a := range assignments {
		if a.ScheduledEnd.Before(windowStart) || a.ScheduledStart.After(windowEnd) {
			continue
		}

		start, clampedL := a.ScheduledStart, false
		if start.Before(windowStart) {
			start, clampedL = windowStart, true
		}
		end, clampedR := a.ScheduledEnd, false
		if end.After(windowEnd) {
			end, clampedR = windowEnd, true
		}

		spans = append(spans, Span{
			Assignment: a,
			Offset:     domain.DaysBetween(windowStart, start),
			Length:     domain.DaysBetween(start, end) + 1,
			ClampedL:   clampedL,
			ClampedR:   clampedR,
		})
	}

	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Offset != spans[j].Offset {
			return spans[i].Offset < spans[j].Offset
		}
		return spans[i].Assignment.TeamID < spans[j].Assignment.TeamID
	})

	return spans
}
