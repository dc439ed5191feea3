package repository

import (
	"context"
	"time"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

func (r *Repository) CreateProject(project *domain.Project) error {
	query := `
		INSERT INTO install_projects (name, customer_name, address, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{project.Name, project.CustomerName, project.Address, project.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&project.ID, &project.CreatedAt, &project.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetProjectByID(id int64) (*domain.Project, error) {
	query := `
		SELECT name, customer_name, address, status, created_at, version
		FROM install_projects WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	project := &domain.Project{
		ID: id,
	}

	dst := []any{&project.Name, &project.CustomerName, &project.Address, &project.Status, &project.CreatedAt, &project.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return project, nil
}

func (r *Repository) GetAllProjects() ([]*domain.Project, error) {
	query := `
		SELECT id, name, customer_name, address, status, created_at, version
		FROM install_projects
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project := &domain.Project{}
		dst := []any{&project.ID, &project.Name, &project.CustomerName, &project.Address, &project.Status, &project.CreatedAt, &project.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *Repository) UpdateProject(project *domain.Project) error {
	query := `
		UPDATE install_projects
		SET
			name = $1,
			customer_name = $2,
			address = $3,
			status = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{project.Name, project.CustomerName, project.Address, project.Status, project.ID, project.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&project.CreatedAt, &project.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteProject(id int64) error {
	query := `
		DELETE FROM install_projects WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
