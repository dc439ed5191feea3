package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name" validate:"required"`
		CustomerName string `json:"customerName" validate:"required"`
		Address      string `json:"address" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	project := &domain.Project{
		Name:         req.Name,
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Status:       domain.ProjectPlanning,
	}

	if err := h.repository.CreateProject(project); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "project created", project)
}

func (h *Handler) GetAllProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.repository.GetAllProjects()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "project list", projects)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	project := r.Context().Value(ProjectCtx).(*domain.Project)
	h.successResponse(w, r, "project info", project)
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	project := r.Context().Value(ProjectCtx).(*domain.Project)

	var req struct {
		Name         *string `json:"name"`
		CustomerName *string `json:"customerName"`
		Address      *string `json:"address"`
		Status       *string `json:"status" validate:"omitempty,oneof=planning active completed"`
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
		project.Name = *req.Name
	}
	if req.CustomerName != nil {
		project.CustomerName = *req.CustomerName
	}
	if req.Address != nil {
		project.Address = *req.Address
	}
	if req.Status != nil {
		project.Status = domain.ProjectStatus(*req.Status)
	}

	if err := h.repository.UpdateProject(project); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "project was modified concurrently, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "project updated", project)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	project := r.Context().Value(ProjectCtx).(*domain.Project)

	if err := h.repository.DeleteProject(project.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "project deleted", nil)
}

func (h *Handler) GetProjectAssignments(w http.ResponseWriter, r *http.Request) {
	project := r.Context().Value(ProjectCtx).(*domain.Project)

	assignments, err := h.repository.GetAssignmentsByProject(project.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "project assignments", assignments)
}
