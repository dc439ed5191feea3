package domain

import "time"

type AssignmentStatus string

const (
	AssignmentScheduled  AssignmentStatus = "scheduled"
	AssignmentInProgress AssignmentStatus = "in_progress"
	AssignmentCompleted  AssignmentStatus = "completed"
	AssignmentCancelled  AssignmentStatus = "cancelled"
)

// IsActive reports whether the assignment still occupies team capacity.
// Completed and cancelled assignments are terminal and take no part in
// conflict or workload calculations.
func (s AssignmentStatus) IsActive() bool {
	return s == AssignmentScheduled || s == AssignmentInProgress
}

// IsValid reports whether s is one of the four known statuses.
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentScheduled, AssignmentInProgress, AssignmentCompleted, AssignmentCancelled:
		return true
	}
	return false
}

// Assignment is a team's date-range commitment to an install project. The
// range is inclusive on both ends: an assignment from 2024-06-01 to
// 2024-06-01 occupies exactly one day.
type Assignment struct {
	ID             int64            `json:"id"`
	ProjectID      int64            `json:"projectID"`
	ProjectName    string           `json:"projectName"`
	TeamID         int64            `json:"teamID"`
	ScheduledStart Date             `json:"scheduledStart"`
	ScheduledEnd   Date             `json:"scheduledEnd"`
	Status         AssignmentStatus `json:"status"`
	Notes          string           `json:"notes"`
	CreatedAt      time.Time        `json:"createdAt"`
	Version        int32            `json:"-"`
}
