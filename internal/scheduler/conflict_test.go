package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

func date(day int) domain.Date {
	return domain.NewDate(2024, time.June, day)
}

func booking(id, teamID, projectID int64, start, end domain.Date, status domain.AssignmentStatus) *domain.Assignment {
	return &domain.Assignment{
		ID:             id,
		ProjectID:      projectID,
		ProjectName:    "Project",
		TeamID:         teamID,
		ScheduledStart: start,
		ScheduledEnd:   end,
		Status:         status,
	}
}

func TestConflictsOverlapping(t *testing.T) {
	existing := []*domain.Assignment{
		booking(1, 7, 100, date(1), date(5), domain.AssignmentScheduled),
	}

	// candidate starting inside the existing range conflicts
	got := Conflicts(existing, Candidate{TeamID: 7, Start: date(3), End: date(10)})
	require.Len(t, got, 1)
	require.Equal(t, int64(1), got[0].ID)

	// candidate starting the day after the existing range ends does not
	got = Conflicts(existing, Candidate{TeamID: 7, Start: date(6), End: date(10)})
	require.Empty(t, got)
}

func TestConflictsAdjacentRangesDoNotOverlap(t *testing.T) {
	existing := []*domain.Assignment{
		booking(1, 7, 100, date(10), date(15), domain.AssignmentScheduled),
	}

	// ends the day before the existing range starts
	require.Empty(t, Conflicts(existing, Candidate{TeamID: 7, Start: date(5), End: date(9)}))
	// starts the day after the existing range ends
	require.Empty(t, Conflicts(existing, Candidate{TeamID: 7, Start: date(16), End: date(20)}))
	// sharing a single boundary day does overlap
	require.Len(t, Conflicts(existing, Candidate{TeamID: 7, Start: date(5), End: date(10)}), 1)
	require.Len(t, Conflicts(existing, Candidate{TeamID: 7, Start: date(15), End: date(20)}), 1)
}

func TestConflictsIdenticalRange(t *testing.T) {
	existing := []*domain.Assignment{
		booking(1, 7, 100, date(1), date(5), domain.AssignmentScheduled),
	}

	require.Len(t, Conflicts(existing, Candidate{TeamID: 7, Start: date(1), End: date(5)}), 1)
}

func TestConflictsZeroLengthCandidate(t *testing.T) {
	existing := []*domain.Assignment{
		booking(1, 7, 100, date(1), date(5), domain.AssignmentScheduled),
	}

	// a single-day candidate exactly on either boundary conflicts
	require.Len(t, Conflicts(existing, Candidate{TeamID: 7, Start: date(1), End: date(1)}), 1)
	require.Len(t, Conflicts(existing, Candidate{TeamID: 7, Start: date(5), End: date(5)}), 1)
	// and one just outside does not
	require.Empty(t, Conflicts(existing, Candidate{TeamID: 7, Start: date(6), End: date(6)}))
}

func TestConflictsContainment(t *testing.T) {
	existing := []*domain.Assignment{
		booking(1, 7, 100, date(10), date(12), domain.AssignmentScheduled),
	}

	// candidate fully containing the existing range conflicts
	require.Len(t, Conflicts(existing, Candidate{TeamID: 7, Start: date(1), End: date(30)}), 1)
	// candidate fully inside the existing range conflicts
	require.Len(t, Conflicts(existing, Candidate{TeamID: 7, Start: date(11), End: date(11)}), 1)
}

func TestConflictsIgnoresTerminalStatuses(t *testing.T) {
	existing := []*domain.Assignment{
		booking(1, 7, 100, date(1), date(5), domain.AssignmentCompleted),
		booking(2, 7, 101, date(1), date(5), domain.AssignmentCancelled),
	}

	require.Empty(t, Conflicts(existing, Candidate{TeamID: 7, Start: date(2), End: date(4)}))
}

func TestConflictsIgnoresOtherTeams(t *testing.T) {
	existing := []*domain.Assignment{
		booking(1, 8, 100, date(1), date(5), domain.AssignmentScheduled),
	}

	require.Empty(t, Conflicts(existing, Candidate{TeamID: 7, Start: date(1), End: date(5)}))
}

func TestConflictsExcludesOwnProject(t *testing.T) {
	existing := []*domain.Assignment{
		booking(1, 7, 100, date(1), date(5), domain.AssignmentScheduled),
		booking(2, 7, 200, date(4), date(8), domain.AssignmentInProgress),
	}

	// moving project 100's booking only collides with project 200
	got := Conflicts(existing, Candidate{TeamID: 7, Start: date(1), End: date(5), ExcludeProjectID: 100})
	require.Len(t, got, 1)
	require.Equal(t, int64(200), got[0].ProjectID)
}

func TestConflictsReturnsAllOverlaps(t *testing.T) {
	existing := []*domain.Assignment{
		booking(1, 7, 100, date(1), date(3), domain.AssignmentScheduled),
		booking(2, 7, 200, date(5), date(7), domain.AssignmentInProgress),
		booking(3, 7, 300, date(20), date(25), domain.AssignmentScheduled),
	}

	got := Conflicts(existing, Candidate{TeamID: 7, Start: date(2), End: date(6)})
	require.Len(t, got, 2)
}
