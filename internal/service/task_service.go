package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-planner/internal/apperror"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/operator/actions"
	"github.com/carson-networks/budget-planner/internal/recurrence"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// TaskService handles tasks and recurring task series.
type TaskService struct {
	storage  *storage.Storage
	operator processor
}

// NewTaskService creates a new TaskService.
func NewTaskService(store *storage.Storage, op processor) *TaskService {
	return &TaskService{storage: store, operator: op}
}

// CreateTask stores a single task, or every instance of a new series when
// input is recurring. It returns the IDs in date order.
func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) ([]uuid.UUID, error) {
	if err := validateTaskInput(input); err != nil {
		return nil, err
	}

	var tasks []*table.Task
	if input.Recurring {
		seriesID, err := uuid.NewV4()
		if err != nil {
			return nil, err
		}
		tasks, err = buildSeries(input, input.Date, seriesID)
		if err != nil {
			return nil, err
		}
	} else {
		tasks = []*table.Task{singleTask(input, input.Date)}
	}

	action := &actions.CreateTasks{Tasks: tasks}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.IDs, nil
}

// EditTask edits one task, or with ScopeThisAndFuture regenerates its
// series from the task's date under the new settings. Tasks outside any
// series are always edited in place.
func (s *TaskService) EditTask(ctx context.Context, id uuid.UUID, input TaskInput, scope actions.SeriesScope) (*TaskEditResult, error) {
	if err := validateTaskInput(input); err != nil {
		return nil, err
	}
	target, err := s.storage.Tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if scope != actions.ScopeThisAndFuture || !target.IsSeriesMember() {
		applyTaskInput(target, input)
		if err := s.operator.Process(ctx, &actions.UpdateTask{Task: target}); err != nil {
			return nil, err
		}
		return &TaskEditResult{Updated: 1}, nil
	}

	replace := &actions.ReplaceSeries{
		ID: id,
		Build: func(target *table.Task) ([]*table.Task, error) {
			if !input.Recurring {
				return []*table.Task{singleTask(input, target.Date)}, nil
			}
			seriesID := target.SeriesID.UUID
			if !target.SeriesID.Valid {
				var err error
				if seriesID, err = uuid.NewV4(); err != nil {
					return nil, err
				}
			}
			return buildSeries(input, target.Date, seriesID)
		},
	}
	if err := s.operator.Process(ctx, replace); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).WithFields(logrus.Fields{
		"taskID":  id.String(),
		"deleted": replace.Deleted,
		"created": len(replace.IDs),
	}).Info("TaskService.EditTask.seriesRegenerated")

	return &TaskEditResult{Deleted: replace.Deleted, Created: replace.IDs}, nil
}

// DeleteTask deletes one task, or with ScopeThisAndFuture every task of its
// series dated on or after it. It returns how many tasks were removed.
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID, scope actions.SeriesScope) (int, error) {
	action := &actions.DeleteTasks{ID: id, Scope: scope}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Deleted, nil
}

// GetTask retrieves one task by ID.
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*Task, error) {
	row, err := s.storage.Tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	task := taskFromStorage(row)
	return &task, nil
}

// ListDay returns the tasks of one day ordered by start time. Pending tasks
// that are already over at now are marked incomplete first.
func (s *TaskService) ListDay(ctx context.Context, day, now time.Time) ([]Task, error) {
	d := recurrence.Day(day)
	rows, err := s.storage.Tasks.List(ctx, &table.TaskFilter{From: &d, To: &d})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(rows, func(a, b *table.Task) int {
		aMinutes, _ := clockMinutes(a.StartTime)
		bMinutes, _ := clockMinutes(b.StartTime)
		return aMinutes - bMinutes
	})

	var overdue []uuid.UUID
	for _, row := range rows {
		if isOverdue(row, now) {
			overdue = append(overdue, row.ID)
			row.Status = table.TaskStatusIncomplete
		}
	}
	if len(overdue) > 0 {
		patch := &actions.PatchTasks{IDs: overdue, Patch: table.TaskPatch{Status: omit.From(table.TaskStatusIncomplete)}}
		if err := s.operator.Process(ctx, patch); err != nil {
			return nil, err
		}
	}

	tasks := make([]Task, len(rows))
	for i, row := range rows {
		tasks[i] = taskFromStorage(row)
	}
	return tasks, nil
}

// ListRange returns the tasks dated between from and to (inclusive).
func (s *TaskService) ListRange(ctx context.Context, from, to time.Time) ([]Task, error) {
	from, to = recurrence.Day(from), recurrence.Day(to)
	if to.Before(from) {
		return nil, apperror.Invalid("to must not be before from")
	}
	rows, err := s.storage.Tasks.List(ctx, &table.TaskFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	tasks := make([]Task, len(rows))
	for i, row := range rows {
		tasks[i] = taskFromStorage(row)
	}
	return tasks, nil
}

// StartTask puts the task in progress.
func (s *TaskService) StartTask(ctx context.Context, id uuid.UUID, now time.Time) error {
	return s.patch(ctx, id, table.TaskPatch{
		Status:    omit.From(table.TaskStatusInProgress),
		StartedAt: omit.From(now.UTC()),
	})
}

// PauseTask stores the seconds worked so far; the task stays in progress.
func (s *TaskService) PauseTask(ctx context.Context, id uuid.UUID, elapsedSeconds int64) error {
	if elapsedSeconds < 0 {
		return apperror.Invalid("elapsed time cannot be negative")
	}
	return s.patch(ctx, id, table.TaskPatch{
		Status:      omit.From(table.TaskStatusInProgress),
		ElapsedTime: omit.From(elapsedSeconds),
	})
}

// CompleteTask marks the task completed and resets its timer.
func (s *TaskService) CompleteTask(ctx context.Context, id uuid.UUID, now time.Time) error {
	return s.patch(ctx, id, table.TaskPatch{
		Status:      omit.From(table.TaskStatusCompleted),
		ElapsedTime: omit.From(int64(0)),
		CompletedAt: omit.From(now.UTC()),
	})
}

// SetStatus sets the status of one task.
func (s *TaskService) SetStatus(ctx context.Context, id uuid.UUID, status table.TaskStatus) error {
	if !status.Valid() {
		return apperror.Invalid("unknown task status")
	}
	return s.patch(ctx, id, table.TaskPatch{Status: omit.From(status)})
}

func (s *TaskService) patch(ctx context.Context, id uuid.UUID, patch table.TaskPatch) error {
	return s.operator.Process(ctx, &actions.PatchTasks{IDs: []uuid.UUID{id}, Patch: patch})
}

func validateTaskInput(input TaskInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return apperror.Invalid("title is required")
	}
	if input.Date.IsZero() {
		return apperror.Invalid("date is required")
	}
	if input.Recurring {
		if _, err := recurrence.ParseFrequency(string(input.Frequency)); err != nil {
			return apperror.Invalid(err.Error())
		}
	}
	return nil
}

func singleTask(input TaskInput, date time.Time) *table.Task {
	task := &table.Task{Status: table.TaskStatusPending}
	input.Recurring = false
	applyTaskInput(task, input)
	task.Date = recurrence.Day(date)
	return task
}

// buildSeries expands input from start into tasks sharing seriesID.
func buildSeries(input TaskInput, start time.Time, seriesID uuid.UUID) ([]*table.Task, error) {
	dates, err := recurrence.Expand(ruleOf(input, start))
	if err != nil {
		return nil, apperror.Invalid(err.Error())
	}

	tasks := make([]*table.Task, 0, len(dates))
	for _, date := range dates {
		task := &table.Task{
			SeriesID:        uuid.NullUUID{UUID: seriesID, Valid: true},
			Status:          table.TaskStatusPending,
			ParentRecurring: true,
		}
		applyTaskInput(task, input)
		task.Date = date
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// isOverdue reports whether a pending task ended before now: its day is past,
// or it is today and its end time has gone by.
func isOverdue(task *table.Task, now time.Time) bool {
	if task.Status != table.TaskStatusPending {
		return false
	}
	taskDay := task.Date.Format(time.DateOnly)
	today := now.Format(time.DateOnly)
	if taskDay < today {
		return true
	}
	if taskDay > today {
		return false
	}
	end, ok := clockMinutes(task.EndTime)
	return ok && now.Hour()*60+now.Minute() > end
}

// clockMinutes parses "hh:mm AM/PM" or 24h "HH:MM" into minutes after
// midnight.
func clockMinutes(s string) (int, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range []string{"3:04 PM", "3:04PM", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}
