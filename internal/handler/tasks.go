package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

func (h *Handler) CreateProjectTask(w http.ResponseWriter, r *http.Request) {
	project := r.Context().Value(ProjectCtx).(*domain.Project)

	var req struct {
		Title     string `json:"title" validate:"required"`
		SortOrder int32  `json:"sortOrder"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	task := &domain.ProjectTask{
		ProjectID: project.ID,
		Title:     req.Title,
		Status:    domain.TaskPending,
		SortOrder: req.SortOrder,
	}

	if err := h.repository.CreateProjectTask(task); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "task created", task)
}

func (h *Handler) GetProjectTasks(w http.ResponseWriter, r *http.Request) {
	project := r.Context().Value(ProjectCtx).(*domain.Project)

	tasks, err := h.repository.GetProjectTasks(project.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "task list", tasks)
}

func (h *Handler) UpdateProjectTask(w http.ResponseWriter, r *http.Request) {
	task := r.Context().Value(ProjectTaskCtx).(*domain.ProjectTask)

	var req struct {
		Title     *string `json:"title"`
		Status    *string `json:"status" validate:"omitempty,oneof=pending in_progress done"`
		SortOrder *int32  `json:"sortOrder"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	if req.SortOrder != nil {
		task.SortOrder = *req.SortOrder
	}

	if err := h.repository.UpdateProjectTask(task); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "task was modified concurrently, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "task updated", task)
}

func (h *Handler) DeleteProjectTask(w http.ResponseWriter, r *http.Request) {
	task := r.Context().Value(ProjectTaskCtx).(*domain.ProjectTask)

	if err := h.repository.DeleteProjectTask(task.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "task deleted", nil)
}
