package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/summit-surfaces/install-manager/backend/internal/domain"
	"github.com/summit-surfaces/install-manager/backend/internal/scheduler"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name" validate:"required"`
		Specialty string `json:"specialty" validate:"required,oneof=cabinets countertops flooring general"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	team := &domain.Team{
		Name:      req.Name,
		Specialty: domain.Specialty(req.Specialty),
	}

	if err := h.repository.CreateTeam(team); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "teams_name_key":
				h.errorResponse(w, r, "team name already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "team created", team)
}

func (h *Handler) GetAllTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.repository.GetAllTeams()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "team list", teams)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)
	h.successResponse(w, r, "team info", team)
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)

	var req struct {
		Name      *string `json:"name"`
		Specialty *string `json:"specialty" validate:"omitempty,oneof=cabinets countertops flooring general"`
		IsActive  *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Specialty != nil {
		team.Specialty = domain.Specialty(*req.Specialty)
	}
	if req.IsActive != nil {
		team.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateTeam(team); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "team was modified concurrently, please retry")
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "teams_name_key":
				h.errorResponse(w, r, "team name already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "team updated", team)
}

func (h *Handler) GetTeamAssignments(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)

	assignments, err := h.repository.GetActiveAssignmentsByTeam(team.ID, 0)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "team assignments", assignments)
}

// GetTeamWorkload returns the advisory capacity badge per team. Teams with no
// active assignments report zero; the thresholds live in the scheduler
// package next to the aggregator.
func (h *Handler) GetTeamWorkload(w http.ResponseWriter, r *http.Request) {
	teams, err := h.repository.GetAllTeams()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	assignments, err := h.repository.GetAllActiveAssignments()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	counts := scheduler.Workload(assignments)

	type teamWorkload struct {
		TeamID          int64  `json:"teamID"`
		TeamName        string `json:"teamName"`
		ActiveCount     int    `json:"activeCount"`
		AvailabilityTag string `json:"availabilityTag"`
	}

	result := make([]teamWorkload, 0, len(teams))
	for _, team := range teams {
		count := counts[team.ID] // missing key reads as zero
		result = append(result, teamWorkload{
			TeamID:          team.ID,
			TeamName:        team.Name,
			ActiveCount:     count,
			AvailabilityTag: scheduler.BadgeLevel(count),
		})
	}

	h.successResponse(w, r, "team workload", result)
}
