package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

func TestTimelineLayout(t *testing.T) {
	assignments := []*domain.Assignment{
		booking(1, 7, 100, date(3), date(5), domain.AssignmentScheduled),
		booking(2, 8, 200, date(1), date(2), domain.AssignmentInProgress),
	}

	spans := Timeline(assignments, date(1), date(10))
	require.Len(t, spans, 2)

	// sorted by offset: team 8's booking starts first
	require.Equal(t, int64(2), spans[0].Assignment.ID)
	require.Equal(t, 0, spans[0].Offset)
	require.Equal(t, 2, spans[0].Length)
	require.False(t, spans[0].ClampedL)
	require.False(t, spans[0].ClampedR)

	require.Equal(t, int64(1), spans[1].Assignment.ID)
	require.Equal(t, 2, spans[1].Offset)
	require.Equal(t, 3, spans[1].Length)
}

func TestTimelineClampsToWindow(t *testing.T) {
	assignments := []*domain.Assignment{
		// overhangs the window on both sides
		booking(1, 7, 100, date(1), date(30), domain.AssignmentScheduled),
		// overhangs only the left edge
		booking(2, 8, 200, date(5), date(12), domain.AssignmentScheduled),
	}

	spans := Timeline(assignments, date(10), date(20))
	require.Len(t, spans, 2)

	require.Equal(t, 0, spans[0].Offset)
	require.Equal(t, 11, spans[0].Length)
	require.True(t, spans[0].ClampedL)
	require.True(t, spans[0].ClampedR)

	require.Equal(t, int64(2), spans[1].Assignment.ID)
	require.Equal(t, 0, spans[1].Offset)
	require.Equal(t, 3, spans[1].Length)
	require.True(t, spans[1].ClampedL)
	require.False(t, spans[1].ClampedR)
}

func TestTimelineDropsOutsideWindow(t *testing.T) {
	assignments := []*domain.Assignment{
		booking(1, 7, 100, date(1), date(4), domain.AssignmentScheduled),
		booking(2, 7, 200, date(26), date(30), domain.AssignmentScheduled),
		// single day exactly on the window edge stays
		booking(3, 7, 300, date(5), date(5), domain.AssignmentScheduled),
	}

	spans := Timeline(assignments, date(5), date(25))
	require.Len(t, spans, 1)
	require.Equal(t, int64(3), spans[0].Assignment.ID)
	require.Equal(t, 0, spans[0].Offset)
	require.Equal(t, 1, spans[0].Length)
}

func TestTimelineSortTiesOnTeam(t *testing.T) {
	assignments := []*domain.Assignment{
		booking(1, 9, 100, date(1), date(3), domain.AssignmentScheduled),
		booking(2, 7, 200, date(1), date(2), domain.AssignmentScheduled),
	}

	spans := Timeline(assignments, date(1), date(10))
	require.Len(t, spans, 2)
	require.Equal(t, int64(7), spans[0].Assignment.TeamID)
	require.Equal(t, int64(9), spans[1].Assignment.TeamID)
}

func TestTimelineInvertedWindow(t *testing.T) {
	assignments := []*domain.Assignment{
		booking(1, 7, 100, date(1), date(5), domain.AssignmentScheduled),
	}

	spans := Timeline(assignments, date(10), date(5))
	require.NotNil(t, spans)
	require.Empty(t, spans)
}
