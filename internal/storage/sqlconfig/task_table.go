package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

var taskColumns = []string{
	"id", "series_id", "title", "description", "task_date", "start_time", "end_time", "icon", "color",
	"recurring", "status", "elapsed_time", "recurring_frequency", "recurring_end_date",
	"selected_week_days", "selected_month_days", "parent_recurring", "started_at", "completed_at", "created_at",
}

// TasksTable provides access to the tasks table.
type TasksTable struct {
	exec bob.Executor
}

var _ table.ITaskTable = (*TasksTable)(nil)

func NewTasksTable(exec bob.Executor) *TasksTable {
	return &TasksTable{exec: exec}
}

func (t *TasksTable) FindByID(ctx context.Context, id uuid.UUID) (*table.Task, error) {
	q := psql.Select(
		sm.Columns(columns(taskColumns)...),
		sm.From(tableTasks),
		sm.Where(whereID(id)),
	)
	return findOne[table.Task](ctx, t.exec, q)
}

// List returns tasks in the filter's date range ordered by date.
func (t *TasksTable) List(ctx context.Context, filter *table.TaskFilter) ([]*table.Task, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns(taskColumns)...),
		sm.From(tableTasks),
	}
	if filter != nil {
		if filter.From != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("task_date").GTE(psql.Arg(*filter.From))))
		}
		if filter.To != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("task_date").LTE(psql.Arg(*filter.To))))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("task_date").Asc(),
		sm.OrderBy("start_time").Asc(),
	)
	return findAll[table.Task](ctx, t.exec, psql.Select(queryMods...))
}

// Insert stores the task, generating an id when it has none.
func (t *TasksTable) Insert(ctx context.Context, task *table.Task) (uuid.UUID, error) {
	id := task.ID
	if id == uuid.Nil {
		var err error
		if id, err = uuid.NewV4(); err != nil {
			return uuid.Nil, err
		}
	}
	q := psql.Insert(
		im.Into(tableTasks,
			"id", "series_id", "title", "description", "task_date", "start_time", "end_time", "icon", "color",
			"recurring", "status", "elapsed_time", "recurring_frequency", "recurring_end_date",
			"selected_week_days", "selected_month_days", "parent_recurring", "started_at", "completed_at",
		),
		im.Values(psql.Arg(
			id, task.SeriesID, task.Title, task.Description, task.Date, task.StartTime, task.EndTime, task.Icon, task.Color,
			task.Recurring, string(task.Status), task.ElapsedTime, task.RecurringFrequency, task.RecurringEndDate,
			task.SelectedWeekDays, task.SelectedMonthDays, task.ParentRecurring, task.StartedAt, task.CompletedAt,
		)),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update replaces every field of the task except its creation time.
func (t *TasksTable) Update(ctx context.Context, task *table.Task) error {
	q := psql.Update(
		um.Table(tableTasks),
		um.SetCol("series_id").ToArg(task.SeriesID),
		um.SetCol("title").ToArg(task.Title),
		um.SetCol("description").ToArg(task.Description),
		um.SetCol("task_date").ToArg(task.Date),
		um.SetCol("start_time").ToArg(task.StartTime),
		um.SetCol("end_time").ToArg(task.EndTime),
		um.SetCol("icon").ToArg(task.Icon),
		um.SetCol("color").ToArg(task.Color),
		um.SetCol("recurring").ToArg(task.Recurring),
		um.SetCol("status").ToArg(string(task.Status)),
		um.SetCol("elapsed_time").ToArg(task.ElapsedTime),
		um.SetCol("recurring_frequency").ToArg(task.RecurringFrequency),
		um.SetCol("recurring_end_date").ToArg(task.RecurringEndDate),
		um.SetCol("selected_week_days").ToArg(task.SelectedWeekDays),
		um.SetCol("selected_month_days").ToArg(task.SelectedMonthDays),
		um.SetCol("parent_recurring").ToArg(task.ParentRecurring),
		um.SetCol("started_at").ToArg(task.StartedAt),
		um.SetCol("completed_at").ToArg(task.CompletedAt),
		um.Where(whereID(task.ID)),
	)
	return execOne(ctx, t.exec, q)
}

// Patch updates only the fields set in the patch.
func (t *TasksTable) Patch(ctx context.Context, id uuid.UUID, patch *table.TaskPatch) error {
	var setMods []bob.Mod[*dialect.UpdateQuery]
	if status, ok := patch.Status.Get(); ok {
		setMods = append(setMods, um.SetCol("status").ToArg(string(status)))
	}
	if elapsed, ok := patch.ElapsedTime.Get(); ok {
		setMods = append(setMods, um.SetCol("elapsed_time").ToArg(elapsed))
	}
	if startedAt, ok := patch.StartedAt.Get(); ok {
		setMods = append(setMods, um.SetCol("started_at").ToArg(startedAt))
	}
	if completedAt, ok := patch.CompletedAt.Get(); ok {
		setMods = append(setMods, um.SetCol("completed_at").ToArg(completedAt))
	}
	if len(setMods) == 0 {
		_, err := t.FindByID(ctx, id)
		return err
	}

	queryMods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table(tableTasks)}, setMods...)
	queryMods = append(queryMods, um.Where(whereID(id)))
	return execOne(ctx, t.exec, psql.Update(queryMods...))
}

func (t *TasksTable) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, t.exec, psql.Delete(dm.From(tableTasks), dm.Where(whereID(id))))
}
