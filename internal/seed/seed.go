package seed

import (
	"log/slog"
	"math/rand"

	"github.com/summit-surfaces/install-manager/backend/internal/repository"
	"github.com/summit-surfaces/install-manager/backend/internal/scheduler"
	"github.com/summit-surfaces/install-manager/backend/internal/utils"
)

// SeedDemoData builds a coherent showroom dataset: a handful of crews, a
// project per customer, and assignments booked through the scheduler so the
// demo never starts out double-booked.
func SeedDemoData(repo *repository.Repository, teamCount, projectCount int) {
	teamIDs := make([]int64, 0, teamCount)
	for i := 0; i < teamCount; i++ {
		team := utils.GenerateRandomTeam()
		if err := repo.CreateTeam(team); err != nil {
			slog.Error("could not insert team", slog.String("error", err.Error()))
			continue
		}
		teamIDs = append(teamIDs, team.ID)
	}

	if len(teamIDs) == 0 {
		slog.Error("no teams inserted, skipping projects")
		return
	}

	sched := scheduler.New(repo)

	projects := 0
	assignments := 0
	for i := 0; i < projectCount; i++ {
		project := utils.GenerateRandomProject()
		if err := repo.CreateProject(project); err != nil {
			slog.Error("could not insert project", slog.String("error", err.Error()))
			continue
		}
		projects++

		draft := utils.GenerateRandomAssignment(project.ID, teamIDs[rand.Intn(len(teamIDs))])
		_, err := sched.Commit(scheduler.Request{
			ProjectID: draft.ProjectID,
			TeamID:    draft.TeamID,
			Start:     draft.ScheduledStart,
			End:       draft.ScheduledEnd,
		})
		if err != nil {
			// conflicts are expected with random dates, leave the project unbooked
			slog.Info("project left unassigned", slog.Int64("project_id", project.ID), slog.String("reason", err.Error()))
			continue
		}
		assignments++
	}

	slog.Info("demo data inserted",
		slog.Int("teams", len(teamIDs)),
		slog.Int("projects", projects),
		slog.Int("assignments", assignments),
	)
}
