package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

func TestWorkloadCountsActiveOnly(t *testing.T) {
	assignments := []*domain.Assignment{
		booking(1, 7, 100, date(1), date(3), domain.AssignmentScheduled),
		booking(2, 7, 200, date(5), date(8), domain.AssignmentInProgress),
		booking(3, 7, 300, date(10), date(12), domain.AssignmentCompleted),
		booking(4, 8, 400, date(1), date(3), domain.AssignmentScheduled),
		booking(5, 9, 500, date(1), date(3), domain.AssignmentCancelled),
	}

	counts := Workload(assignments)
	require.Equal(t, map[int64]int{7: 2, 8: 1}, counts)

	// team 9's only assignment is cancelled, so the key is absent
	_, ok := counts[9]
	require.False(t, ok)
	require.Zero(t, counts[9])
}

func TestWorkloadEmpty(t *testing.T) {
	counts := Workload(nil)
	require.NotNil(t, counts)
	require.Empty(t, counts)
}

func TestBadgeLevel(t *testing.T) {
	require.Equal(t, "available", BadgeLevel(0))
	require.Equal(t, "busy", BadgeLevel(1))
	require.Equal(t, "busy", BadgeLevel(2))
	require.Equal(t, "overloaded", BadgeLevel(3))
	require.Equal(t, "overloaded", BadgeLevel(17))
}
