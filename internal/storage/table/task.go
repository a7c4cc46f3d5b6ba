package table

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusIncomplete TaskStatus = "incomplete"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusIncomplete:
		return true
	}
	return false
}

// Task is one dated task. Instances generated from a recurrence rule carry
// ParentRecurring and a shared SeriesID.
type Task struct {
	ID                 uuid.UUID     `json:"id" db:"id"`
	SeriesID           uuid.NullUUID `json:"seriesId" db:"series_id"`
	Title              string        `json:"title" db:"title"`
	Description        string        `json:"description,omitempty" db:"description"`
	Date               time.Time     `json:"date" db:"task_date"`
	StartTime          string        `json:"startTime" db:"start_time"`
	EndTime            string        `json:"endTime" db:"end_time"`
	Icon               string        `json:"icon" db:"icon"`
	Color              string        `json:"color" db:"color"`
	Recurring          bool          `json:"recurring" db:"recurring"`
	Status             TaskStatus    `json:"status" db:"status"`
	ElapsedTime        int64         `json:"elapsedTime" db:"elapsed_time"`
	RecurringFrequency string        `json:"recurringFrequency,omitempty" db:"recurring_frequency"`
	RecurringEndDate   *time.Time    `json:"recurringEndDate,omitempty" db:"recurring_end_date"`
	SelectedWeekDays   Ints          `json:"selectedWeekDays,omitempty" db:"selected_week_days"`
	SelectedMonthDays  Ints          `json:"selectedMonthDays,omitempty" db:"selected_month_days"`
	ParentRecurring    bool          `json:"parentRecurring" db:"parent_recurring"`
	StartedAt          *time.Time    `json:"startedAt,omitempty" db:"started_at"`
	CompletedAt        *time.Time    `json:"completedAt,omitempty" db:"completed_at"`
	CreatedAt          time.Time     `json:"createdAt" db:"created_at"`
}

// IsSeriesMember reports whether the task belongs to a recurring series.
func (t *Task) IsSeriesMember() bool {
	return t.Recurring || t.ParentRecurring
}

// TaskPatch updates the status and timer fields of a task. Unset fields are
// left untouched.
type TaskPatch struct {
	Status      omit.Val[TaskStatus]
	ElapsedTime omit.Val[int64]
	StartedAt   omit.Val[time.Time]
	CompletedAt omit.Val[time.Time]
}

// TaskFilter restricts List to a date range (inclusive). Nil bounds are open.
type TaskFilter struct {
	From *time.Time
	To   *time.Time
}

// ITaskTable defines the storage operations for tasks.
type ITaskTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)
	// List returns tasks ordered by date.
	List(ctx context.Context, filter *TaskFilter) ([]*Task, error)
	// Insert stores the task, generating an id when it has none.
	Insert(ctx context.Context, task *Task) (uuid.UUID, error)
	// Update replaces every field of the task with the given id.
	Update(ctx context.Context, task *Task) error
	Patch(ctx context.Context, id uuid.UUID, patch *TaskPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
