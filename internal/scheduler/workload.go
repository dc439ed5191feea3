package scheduler

import (
	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

// Workload counts active assignments per team. Teams without any active
// assignment are absent from the map; callers must read a missing key as zero.
func Workload(assignments []*domain.Assignment) map[int64]int {
	counts := make(map[int64]int)
	for _, a := range assignments {
		if !a.Status.IsActive() {
			continue
		}
		counts[a.TeamID]++
	}
	return counts
}

// BadgeLevel maps an active-assignment count to the dashboard's advisory
// capacity badge. The thresholds are display policy, not a scheduling rule.
func BadgeLevel(count int) string {
	switch {
	case count == 0:
		return "available"
	case count <= 2:
		return "busy"
	default:
		return "overloaded"
	}
}
