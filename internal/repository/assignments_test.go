package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/summit-surfaces/install-manager/backend/internal/config"
	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5
	cfg.Database.TransactionTimeout = 10

	return NewRepository(cfg, db), mock
}

var assignmentColumns = []string{
	"id", "project_id", "name", "team_id",
	"scheduled_start", "scheduled_end", "status", "notes", "created_at", "version",
}

func TestGetActiveAssignmentsByTeam(t *testing.T) {
	repo, mock := newTestRepository(t)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(assignmentColumns).
		AddRow(int64(1), int64(100), "Maple Ave Kitchen", int64(7),
			start, end, "scheduled", "bring shims", time.Now(), 1)

	mock.ExpectQuery("SELECT(.|\n)+FROM project_assignments a(.|\n)+JOIN install_projects p").
		WithArgs(int64(7), int64(0)).
		WillReturnRows(rows)

	got, err := repo.GetActiveAssignmentsByTeam(7, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(1), got[0].ID)
	require.Equal(t, "Maple Ave Kitchen", got[0].ProjectName)
	require.Equal(t, domain.AssignmentScheduled, got[0].Status)
	require.Equal(t, "2024-06-01", got[0].ScheduledStart.String())
	require.Equal(t, "2024-06-05", got[0].ScheduledEnd.String())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveAssignmentsByTeamExcludesProject(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT(.|\n)+FROM project_assignments a").
		WithArgs(int64(7), int64(100)).
		WillReturnRows(sqlmock.NewRows(assignmentColumns))

	got, err := repo.GetActiveAssignmentsByTeam(7, 100)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssignment(t *testing.T) {
	repo, mock := newTestRepository(t)

	created := time.Now()
	mock.ExpectQuery("INSERT INTO project_assignments").
		WithArgs(int64(100), int64(7),
			domain.NewDate(2024, 6, 1), domain.NewDate(2024, 6, 5),
			domain.AssignmentScheduled, "bring shims").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "version"}).
			AddRow(int64(42), created, 1))

	assignment := &domain.Assignment{
		ProjectID:      100,
		TeamID:         7,
		ScheduledStart: domain.NewDate(2024, 6, 1),
		ScheduledEnd:   domain.NewDate(2024, 6, 5),
		Status:         domain.AssignmentScheduled,
		Notes:          "bring shims",
	}
	require.NoError(t, repo.CreateAssignment(assignment))
	require.Equal(t, int64(42), assignment.ID)
	require.Equal(t, int32(1), assignment.Version)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAssignmentStatusStaleVersion(t *testing.T) {
	repo, mock := newTestRepository(t)

	// no row matches the stale version, so the RETURNING scan yields no rows
	mock.ExpectQuery("UPDATE project_assignments").
		WithArgs(domain.AssignmentCancelled, "customer postponed", int64(42), int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"version"}))

	assignment := &domain.Assignment{
		ID:      42,
		Status:  domain.AssignmentCancelled,
		Notes:   "customer postponed",
		Version: 1,
	}
	require.ErrorIs(t, repo.UpdateAssignmentStatus(assignment), sql.ErrNoRows)

	require.NoError(t, mock.ExpectationsWereMet())
}
