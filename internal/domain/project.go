package domain

import "time"

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
)

type Project struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	CustomerName string        `json:"customerName"`
	Address      string        `json:"address"`
	Status       ProjectStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	Version      int32         `json:"-"`
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

type ProjectTask struct {
	ID        int64      `json:"id"`
	ProjectID int64      `json:"projectID"`
	Title     string     `json:"title"`
	Status    TaskStatus `json:"status"`
	SortOrder int32      `json:"sortOrder"`
	CreatedAt time.Time  `json:"createdAt"`
	Version   int32      `json:"-"`
}
