package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

// fakeStore is an in-memory AssignmentStore. Each created assignment becomes
// visible to subsequent reads unless the store is frozen, which simulates a
// second session reading before the first one's insert lands.
type fakeStore struct {
	assignments []*domain.Assignment
	frozen      bool
	readErr     error
	writeErr    error
	readCalls   int
	nextID      int64
}

func (f *fakeStore) GetActiveAssignmentsByTeam(teamID int64, excludeProjectID int64) ([]*domain.Assignment, error) {
	f.readCalls++
	if f.readErr != nil {
		return nil, f.readErr
	}
	var out []*domain.Assignment
	for _, a := range f.assignments {
		if a.TeamID != teamID || !a.Status.IsActive() {
			continue
		}
		if excludeProjectID != 0 && a.ProjectID == excludeProjectID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeStore) CreateAssignment(a *domain.Assignment) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.nextID++
	a.ID = f.nextID
	if !f.frozen {
		f.assignments = append(f.assignments, a)
	}
	return nil
}

func validRequest() Request {
	return Request{
		ProjectID: 100,
		TeamID:    7,
		Start:     date(1),
		End:       date(5),
		Notes:     "kitchen install",
	}
}

func TestCheckIncompleteDraft(t *testing.T) {
	store := &fakeStore{}
	s := New(store)

	for _, req := range []Request{
		{TeamID: 0, Start: date(1), End: date(5)},
		{TeamID: 7, End: date(5)},
		{TeamID: 7, Start: date(1)},
	} {
		_, err := s.Check(req)
		require.ErrorIs(t, err, ErrIncompleteDraft)
	}
	require.Zero(t, store.readCalls)
}

func TestCheckInvalidDateRange(t *testing.T) {
	store := &fakeStore{}
	s := New(store)

	req := validRequest()
	req.Start = domain.NewDate(2024, 7, 10)
	req.End = domain.NewDate(2024, 7, 1)

	_, err := s.Check(req)
	require.ErrorIs(t, err, ErrInvalidDateRange)
	// the range is rejected locally, the store is never consulted
	require.Zero(t, store.readCalls)
}

func TestCheckStoreFailure(t *testing.T) {
	cause := errors.New("connection reset")
	s := New(&fakeStore{readErr: cause})

	_, err := s.Check(validRequest())
	var checkErr *CheckError
	require.ErrorAs(t, err, &checkErr)
	require.ErrorIs(t, err, cause)
}

func TestCheckReturnsConflicts(t *testing.T) {
	store := &fakeStore{assignments: []*domain.Assignment{
		booking(1, 7, 200, date(3), date(8), domain.AssignmentScheduled),
	}}
	s := New(store)

	conflicts, err := s.Check(validRequest())
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	require.Equal(t, int64(200), conflicts[0].ProjectID)
}

func TestCommitSuccess(t *testing.T) {
	store := &fakeStore{}
	s := New(store)

	req := validRequest()
	created, err := s.Commit(req)
	require.NoError(t, err)
	require.Equal(t, domain.AssignmentScheduled, created.Status)
	require.Equal(t, req.ProjectID, created.ProjectID)
	require.Equal(t, req.TeamID, created.TeamID)
	require.True(t, created.ScheduledStart.Equal(req.Start))
	require.True(t, created.ScheduledEnd.Equal(req.End))
	require.Equal(t, req.Notes, created.Notes)
	require.NotZero(t, created.ID)
	require.Len(t, store.assignments, 1)
}

func TestCommitRejectsConflicts(t *testing.T) {
	store := &fakeStore{assignments: []*domain.Assignment{
		booking(1, 7, 200, date(4), date(9), domain.AssignmentInProgress),
	}}
	s := New(store)

	_, err := s.Commit(validRequest())
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	// nothing was written
	require.Len(t, store.assignments, 1)
}

func TestCommitPersistFailure(t *testing.T) {
	cause := errors.New("deadlock detected")
	s := New(&fakeStore{writeErr: cause})

	_, err := s.Commit(validRequest())
	var persistErr *PersistError
	require.ErrorAs(t, err, &persistErr)
	require.ErrorIs(t, err, cause)
}

func TestCommitRechecksAtCommitTime(t *testing.T) {
	store := &fakeStore{}
	s := New(store)

	// the earlier Check result is never cached: a booking added between Check
	// and Commit is seen by Commit's own re-check
	conflicts, err := s.Check(validRequest())
	require.NoError(t, err)
	require.Empty(t, conflicts)

	store.assignments = append(store.assignments,
		booking(1, 7, 300, date(2), date(4), domain.AssignmentScheduled))

	_, err = s.Commit(validRequest())
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Equal(t, 2, store.readCalls)
}

func TestCommitRaceWindow(t *testing.T) {
	// Two sessions booking the same team can both pass the advisory check when
	// their reads interleave before either insert lands. The frozen store makes
	// the first commit invisible to the second's re-check, reproducing that
	// interleaving deterministically. Both commits succeed; the check does not
	// guarantee exclusion.
	store := &fakeStore{frozen: true}
	s := New(store)

	first, err := s.Commit(validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.ProjectID = 999
	second, err := s.Commit(other)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestCommitReschedulingSkipsOwnProject(t *testing.T) {
	store := &fakeStore{assignments: []*domain.Assignment{
		booking(1, 7, 100, date(1), date(5), domain.AssignmentScheduled),
	}}
	s := New(store)

	req := validRequest()
	req.ExcludeProjectID = req.ProjectID
	req.Start = date(3)
	req.End = date(7)

	created, err := s.Commit(req)
	require.NoError(t, err)
	require.Equal(t, int64(100), created.ProjectID)
}
