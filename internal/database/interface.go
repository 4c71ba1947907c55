package database

import (
	"context"
	"time"

	"ganttui/internal/models"
)

// TaskRepository defines task-related store operations.
type TaskRepository interface {
	AddTask(ctx context.Context, projectID int64, seed TaskSeed) (int64, error)
	GetTasks(ctx context.Context, projectID int64) ([]models.Task, error)
	GetTask(ctx context.Context, id int64) (models.Task, error)
	TaskExists(ctx context.Context, id int64) (bool, error)
	UpdateTaskDates(ctx context.Context, id int64, start, end time.Time) error
	ShiftSubtree(ctx context.Context, id int64, deltaDays float64) error
	RenameTask(ctx context.Context, id int64, name string) error
	SetTaskStatus(ctx context.Context, id int64, status models.TaskStatus) error
	SetTaskCollapsed(ctx context.Context, id int64, collapsed bool) error
	DeleteTask(ctx context.Context, id int64) error
}

// ProjectRepository defines project-related store operations.
type ProjectRepository interface {
	EnsureDefaultProject(ctx context.Context) (int64, error)
	CreateProject(ctx context.Context, name, slug string) (int64, error)
	GetProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id int64) (models.Project, error)
}

// SettingsRepository defines persisted view-state operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	SaveViewState(ctx context.Context, state ViewState) error
	LoadViewState(ctx context.Context) (ViewState, bool)
}

// Repository combines all store interfaces.
type Repository interface {
	TaskRepository
	ProjectRepository
	SettingsRepository
}

var _ Repository = (*Store)(nil)
