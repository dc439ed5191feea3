package scheduler

import (
	"errors"
	"fmt"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

var (
	// ErrIncompleteDraft is returned when the caller has not chosen a team or
	// both dates yet.
	ErrIncompleteDraft = errors.New("team and both dates must be chosen")
	// ErrInvalidDateRange is returned when the scheduled start falls after the
	// scheduled end. It is detected locally, before any store access.
	ErrInvalidDateRange = errors.New("scheduled start must not be after scheduled end")
)

// ConflictError reports that the proposed range overlaps one or more active
// assignments of the same team. The overlapping assignments are carried so
// the caller can show the user what is in the way.
type ConflictError struct {
	Conflicts []*domain.Assignment
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("team already has %d overlapping assignment(s)", len(e.Conflicts))
}

// CheckError wraps a store failure during the conflict check, keeping it
// distinct from "no conflicts found".
type CheckError struct {
	Err error
}

func (e *CheckError) Error() string {
	return "conflict check failed: " + e.Err.Error()
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// PersistError wraps a store failure while inserting the assignment.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return "assignment could not be saved: " + e.Err.Error()
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// AssignmentStore is the slice of the repository the scheduler needs. Reads
// must return only active assignments of the given team, joined with the
// project name for conflict display.
type AssignmentStore interface {
	GetActiveAssignmentsByTeam(teamID int64, excludeProjectID int64) ([]*domain.Assignment, error)
	CreateAssignment(a *domain.Assignment) error
}

// Scheduler decides whether a new assignment may be created and, if so,
// writes it. It holds no state between calls: conflicts and workload are
// recomputed from the store on every invocation, so a draft whose parameters
// changed can never be gated by a stale check.
type Scheduler struct {
	store AssignmentStore
}

func New(store AssignmentStore) *Scheduler {
	return &Scheduler{store: store}
}

// Request is a draft assignment. Exclusion of the draft's own project is the
// caller's choice: set ExcludeProjectID when re-scheduling an existing
// project so it does not collide with itself.
type Request struct {
	ProjectID        int64
	TeamID           int64
	Start            domain.Date
	End              domain.Date
	Notes            string
	ExcludeProjectID int64
}

func (s *Scheduler) validate(req Request) error {
	if req.TeamID == 0 || req.Start.IsZero() || req.End.IsZero() {
		return ErrIncompleteDraft
	}
	if req.Start.After(req.End) {
		return ErrInvalidDateRange
	}
	return nil
}

// Check validates the draft and returns the overlapping assignments, empty
// when the team is free. It is a pure read; nothing is written.
func (s *Scheduler) Check(req Request) ([]*domain.Assignment, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	existing, err := s.store.GetActiveAssignmentsByTeam(req.TeamID, req.ExcludeProjectID)
	if err != nil {
		return nil, &CheckError{Err: err}
	}

	return Conflicts(existing, Candidate{
		TeamID:           req.TeamID,
		Start:            req.Start,
		End:              req.End,
		ExcludeProjectID: req.ExcludeProjectID,
	}), nil
}

// Commit runs the full Draft -> Validated -> Committed transition: it
// re-checks conflicts against the request's current parameters and, only if
// none are found, inserts the assignment with status scheduled as a single
// row. On any failure nothing is written and the caller may retry with
// corrected input; no retry happens here.
//
// The check and the insert are two round trips, so two sessions racing on the
// same team can both pass their check and double-book. Without an exclusion
// constraint on (team_id, daterange) in the store this remains possible; the
// check is advisory.
func (s *Scheduler) Commit(req Request) (*domain.Assignment, error) {
	conflicts, err := s.Check(req)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &ConflictError{Conflicts: conflicts}
	}

	assignment := &domain.Assignment{
		ProjectID:      req.ProjectID,
		TeamID:         req.TeamID,
		ScheduledStart: req.Start,
		ScheduledEnd:   req.End,
		Status:         domain.AssignmentScheduled,
		Notes:          req.Notes,
	}
	if err := s.store.CreateAssignment(assignment); err != nil {
		return nil, &PersistError{Err: err}
	}

	return assignment, nil
}
