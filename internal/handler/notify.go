package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

const assignmentChannel = "assignments:changed"

// notifyAssignmentChanged publishes a change event so open dashboards can
// refresh. Delivery is best-effort: a publish failure is logged, never
// surfaced, because the row is already committed.
func (h *Handler) notifyAssignmentChanged(assignment *domain.Assignment, action string) {
	payload, err := json.Marshal(struct {
		Action       string `json:"action"`
		AssignmentID int64  `json:"assignmentID"`
		TeamID       int64  `json:"teamID"`
		ProjectID    int64  `json:"projectID"`
	}{
		Action:       action,
		AssignmentID: assignment.ID,
		TeamID:       assignment.TeamID,
		ProjectID:    assignment.ProjectID,
	})
	if err != nil {
		slog.Error("could not serialize assignment notification", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	if err := h.redisClient.Publish(ctx, assignmentChannel, payload).Err(); err != nil {
		slog.Error("could not publish assignment notification", "error", err)
	}
}
