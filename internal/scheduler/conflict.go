package scheduler

import (
	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

// Candidate is a proposed booking of a team to a date range. When
// ExcludeProjectID is non-zero, that project's own assignments are skipped so
// re-scheduling a project never conflicts with itself.
type Candidate struct {
	TeamID           int64
	Start            domain.Date
	End              domain.Date
	ExcludeProjectID int64
}

// overlaps reports whether the inclusive ranges [candStart, candEnd] and
// [start, end] share at least one calendar day. The three separate clauses are
// kept instead of the folded a <= e && b >= s form so that boundary cases
// (zero-length candidate landing exactly on an endpoint) read off directly.
func overlaps(candStart, candEnd, start, end domain.Date) bool {
	// candidate start lands inside the existing range
	if !candStart.Before(start) && !candStart.After(end) {
		return true
	}
	// candidate end lands inside the existing range
	if !candEnd.Before(start) && !candEnd.After(end) {
		return true
	}
	// candidate fully contains the existing range
	if candStart.Before(start) && candEnd.After(end) {
		return true
	}
	return false
}

// Conflicts returns the active assignments of the candidate's team whose date
// ranges overlap the candidate's. Terminal assignments never conflict. The
// result is empty, never nil, when the team is free.
func Conflicts(assignments []*domain.Assignment, c Candidate) []*domain.Assignment {
	conflicts := []*domain.Assignment{}
	for _, a := range assignments {
		if a.TeamID != c.TeamID {
			continue
		}
		if !a.Status.IsActive() {
			continue
		}
		if c.ExcludeProjectID != 0 && a.ProjectID == c.ExcludeProjectID {
			continue
		}
		if overlaps(c.Start, c.End, a.ScheduledStart, a.ScheduledEnd) {
			conflicts = append(conflicts, a)
		}
	}
	return conflicts
}
