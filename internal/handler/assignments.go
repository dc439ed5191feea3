package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
	"github.com/summit-surfaces/install-manager/backend/internal/scheduler"
	"github.com/summit-surfaces/install-manager/backend/internal/utils"
)

type assignmentRequest struct {
	ProjectID  int64  `json:"projectID" validate:"required"`
	TeamID     int64  `json:"teamID" validate:"required"`
	Start      string `json:"start" validate:"required"`
	End        string `json:"end" validate:"required"`
	Notes      string `json:"notes"`
	Reschedule bool   `json:"reschedule"`
}

func (h *Handler) schedulerRequest(req assignmentRequest) (scheduler.Request, error) {
	start, err := domain.ParseDate(req.Start)
	if err != nil {
		return scheduler.Request{}, err
	}
	end, err := domain.ParseDate(req.End)
	if err != nil {
		return scheduler.Request{}, err
	}

	sr := scheduler.Request{
		ProjectID: req.ProjectID,
		TeamID:    req.TeamID,
		Start:     start,
		End:       end,
		Notes:     req.Notes,
	}
	if req.Reschedule {
		// moving an existing project's booking must not collide with itself
		sr.ExcludeProjectID = req.ProjectID
	}
	return sr, nil
}

// CheckAssignment previews conflicts for a draft booking without writing
// anything.
func (h *Handler) CheckAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	sr, err := h.schedulerRequest(req)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	conflicts, err := h.scheduler.Check(sr)
	if err != nil {
		var checkErr *scheduler.CheckError
		switch {
		case errors.Is(err, scheduler.ErrInvalidDateRange), errors.Is(err, scheduler.ErrIncompleteDraft):
			h.badRequest(w, r, err)
		case errors.As(err, &checkErr):
			h.internalServerError(w, r, checkErr)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "conflict check complete", conflicts)
}

func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	sr, err := h.schedulerRequest(req)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	// verify the references before booking so persistence failures cannot be
	// confused with scheduling conflicts
	project, err := h.repository.GetProjectByID(req.ProjectID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "project not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	team, err := h.repository.GetTeamByID(req.TeamID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "team not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if !team.IsActive {
		h.errorResponse(w, r, "team is deactivated")
		return
	}

	assignment, err := h.scheduler.Commit(sr)
	if err != nil {
		var conflictErr *scheduler.ConflictError
		var checkErr *scheduler.CheckError
		var persistErr *scheduler.PersistError
		switch {
		case errors.Is(err, scheduler.ErrInvalidDateRange), errors.Is(err, scheduler.ErrIncompleteDraft):
			h.badRequest(w, r, err)
		case errors.As(err, &conflictErr):
			h.errorResponseWithData(w, r, "team already booked for these dates", conflictErr.Conflicts)
		case errors.As(err, &checkErr):
			h.internalServerError(w, r, checkErr)
		case errors.As(err, &persistErr):
			h.internalServerError(w, r, persistErr)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	assignment.ProjectName = project.Name
	h.notifyAssignmentChanged(assignment, "created")

	mailMessage := domain.MailMessage{
		Type: "assignment_notice",
		To:   h.config.Email.From,
		Data: domain.AssignmentNoticeMailData{
			TeamName:    team.Name,
			ProjectName: project.Name,
			Start:       assignment.ScheduledStart.String(),
			End:         assignment.ScheduledEnd.String(),
		},
	}
	if err := h.publishMail(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "assignment created", assignment)
}

func (h *Handler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	assignment := r.Context().Value(AssignmentCtx).(*domain.Assignment)
	h.successResponse(w, r, "assignment info", assignment)
}

func (h *Handler) UpdateAssignmentStatus(w http.ResponseWriter, r *http.Request) {
	assignment := r.Context().Value(AssignmentCtx).(*domain.Assignment)

	var req struct {
		Status string  `json:"status" validate:"required,oneof=scheduled in_progress completed cancelled"`
		Notes  *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	newStatus := domain.AssignmentStatus(req.Status)
	if err := utils.ValidateAssignmentTransition(assignment.Status, newStatus); err != nil {
		h.badRequest(w, r, err)
		return
	}

	assignment.Status = newStatus
	if req.Notes != nil {
		assignment.Notes = *req.Notes
	}

	if err := h.repository.UpdateAssignmentStatus(assignment); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "assignment was modified concurrently, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifyAssignmentChanged(assignment, "status_changed")

	h.successResponse(w, r, "assignment status updated", assignment)
}

// GetAssignmentTimeline renders the dashboard's Gantt rows for a date window
// given as ?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *Handler) GetAssignmentTimeline(w http.ResponseWriter, r *http.Request) {
	from, err := domain.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	to, err := domain.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	if from.After(to) {
		h.errorResponse(w, r, "from must not be after to")
		return
	}

	assignments, err := h.repository.GetAllActiveAssignments()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "assignment timeline", scheduler.Timeline(assignments, from, to))
}
