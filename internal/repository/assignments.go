package repository

import (
	"context"
	"time"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

const assignmentActiveStatuses = `('scheduled', 'in_progress')`

// GetActiveAssignmentsByTeam returns the team's non-terminal assignments
// joined with the project name for conflict display. Pass 0 as
// excludeProjectID to exclude nothing.
func (r *Repository) GetActiveAssignmentsByTeam(teamID int64, excludeProjectID int64) ([]*domain.Assignment, error) {
	query := `
		SELECT
			a.id,
			a.project_id,
			p.name,
			a.team_id,
			a.scheduled_start,
			a.scheduled_end,
			a.status,
			a.notes,
			a.created_at,
			a.version
		FROM project_assignments a
		JOIN install_projects p ON p.id = a.project_id
		WHERE a.team_id = $1
		  AND a.status IN ` + assignmentActiveStatuses + `
		  AND ($2 = 0 OR a.project_id <> $2)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, teamID, excludeProjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// GetAllActiveAssignments feeds the workload aggregator and the dashboard
// timeline.
func (r *Repository) GetAllActiveAssignments() ([]*domain.Assignment, error) {
	query := `
		SELECT
			a.id,
			a.project_id,
			p.name,
			a.team_id,
			a.scheduled_start,
			a.scheduled_end,
			a.status,
			a.notes,
			a.created_at,
			a.version
		FROM project_assignments a
		JOIN install_projects p ON p.id = a.project_id
		WHERE a.status IN ` + assignmentActiveStatuses

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignments(rows)
}

func (r *Repository) GetAssignmentsByProject(projectID int64) ([]*domain.Assignment, error) {
	query := `
		SELECT
			a.id,
			a.project_id,
			p.name,
			a.team_id,
			a.scheduled_start,
			a.scheduled_end,
			a.status,
			a.notes,
			a.created_at,
			a.version
		FROM project_assignments a
		JOIN install_projects p ON p.id = a.project_id
		WHERE a.project_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignments(rows)
}

func (r *Repository) GetAssignmentByID(id int64) (*domain.Assignment, error) {
	query := `
		SELECT
			a.project_id,
			p.name,
			a.team_id,
			a.scheduled_start,
			a.scheduled_end,
			a.status,
			a.notes,
			a.created_at,
			a.version
		FROM project_assignments a
		JOIN install_projects p ON p.id = a.project_id
		WHERE a.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	assignment := &domain.Assignment{
		ID: id,
	}

	dst := []any{
		&assignment.ProjectID,
		&assignment.ProjectName,
		&assignment.TeamID,
		&assignment.ScheduledStart,
		&assignment.ScheduledEnd,
		&assignment.Status,
		&assignment.Notes,
		&assignment.CreatedAt,
		&assignment.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return assignment, nil
}

func (r *Repository) CreateAssignment(assignment *domain.Assignment) error {
	query := `
		INSERT INTO project_assignments (project_id, team_id, scheduled_start, scheduled_end, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		assignment.ProjectID,
		assignment.TeamID,
		assignment.ScheduledStart,
		assignment.ScheduledEnd,
		assignment.Status,
		assignment.Notes,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateAssignmentStatus(assignment *domain.Assignment) error {
	query := `
		UPDATE project_assignments
		SET
			status = $1,
			notes = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{assignment.Status, assignment.Notes, assignment.ID, assignment.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&assignment.Version); err != nil {
		return err
	}

	return nil
}

type assignmentRows interface {
	Next() bool
	Scan(dst ...any) error
	Err() error
}

func scanAssignments(rows assignmentRows) ([]*domain.Assignment, error) {
	assignments := make([]*domain.Assignment, 0)
	for rows.Next() {
		assignment := &domain.Assignment{}
		dst := []any{
			&assignment.ID,
			&assignment.ProjectID,
			&assignment.ProjectName,
			&assignment.TeamID,
			&assignment.ScheduledStart,
			&assignment.ScheduledEnd,
			&assignment.Status,
			&assignment.Notes,
			&assignment.CreatedAt,
			&assignment.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
