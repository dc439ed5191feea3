package repository

import (
	"context"
	"time"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

func (r *Repository) CreateProjectTask(task *domain.ProjectTask) error {
	query := `
		INSERT INTO project_tasks (project_id, title, status, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{task.ProjectID, task.Title, task.Status, task.SortOrder}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&task.ID, &task.CreatedAt, &task.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetProjectTasks(projectID int64) ([]*domain.ProjectTask, error) {
	query := `
		SELECT id, project_id, title, status, sort_order, created_at, version
		FROM project_tasks
		WHERE project_id = $1
		ORDER BY sort_order, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.ProjectTask, 0)
	for rows.Next() {
		task := &domain.ProjectTask{}
		dst := []any{&task.ID, &task.ProjectID, &task.Title, &task.Status, &task.SortOrder, &task.CreatedAt, &task.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *Repository) GetProjectTaskByID(id int64) (*domain.ProjectTask, error) {
	query := `
		SELECT project_id, title, status, sort_order, created_at, version
		FROM project_tasks WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	task := &domain.ProjectTask{
		ID: id,
	}

	dst := []any{&task.ProjectID, &task.Title, &task.Status, &task.SortOrder, &task.CreatedAt, &task.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *Repository) UpdateProjectTask(task *domain.ProjectTask) error {
	query := `
		UPDATE project_tasks
		SET
			title = $1,
			status = $2,
			sort_order = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{task.Title, task.Status, task.SortOrder, task.ID, task.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&task.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteProjectTask(id int64) error {
	query := `
		DELETE FROM project_tasks WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
