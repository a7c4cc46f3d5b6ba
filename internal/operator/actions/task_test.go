package actions_test

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-planner/internal/apperror"
	"github.com/carson-networks/budget-planner/internal/operator/actions"
	"github.com/carson-networks/budget-planner/internal/recurrence"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

func date(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return recurrence.Day(d)
}

// weeklySeries builds ten weekly instances starting 2024-01-22, spanning
// January to March.
func weeklySeries(seriesID uuid.UUID, title string) []*table.Task {
	start := date("2024-01-22")
	tasks := make([]*table.Task, 0, 10)
	for i := range 10 {
		tasks = append(tasks, &table.Task{
			SeriesID:           uuid.NullUUID{UUID: seriesID, Valid: true},
			Title:              title,
			Date:               start.AddDate(0, 0, 7*i),
			StartTime:          "09:00",
			EndTime:            "10:00",
			Status:             table.TaskStatusPending,
			Recurring:          true,
			RecurringFrequency: string(recurrence.Weekly),
			ParentRecurring:    true,
		})
	}
	return tasks
}

func (f *fixture) tasks(t *testing.T) []*table.Task {
	t.Helper()
	tasks, err := f.store.Tasks.List(context.Background(), nil)
	require.NoError(t, err)
	return tasks
}

func taskDates(tasks []*table.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Date.Format(time.DateOnly))
	}
	return out
}

// -- create --

func TestCreateTasks_Empty(t *testing.T) {
	f := newFixture(t)

	err := f.run(t, &actions.CreateTasks{})
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
}

// -- delete scope --

func TestDeleteTasks_ThisAndFuture(t *testing.T) {
	f := newFixture(t)
	create := &actions.CreateTasks{Tasks: weeklySeries(uuid.Must(uuid.NewV4()), "Gym")}
	require.NoError(t, f.run(t, create))
	require.Len(t, create.IDs, 10)

	del := &actions.DeleteTasks{ID: create.IDs[4], Scope: actions.ScopeThisAndFuture}
	require.NoError(t, f.run(t, del))

	assert.Equal(t, 6, del.Deleted)
	assert.Equal(t, []string{"2024-01-22", "2024-01-29", "2024-02-05", "2024-02-12"}, taskDates(f.tasks(t)))
}

func TestDeleteTasks_OnlyThis(t *testing.T) {
	f := newFixture(t)
	create := &actions.CreateTasks{Tasks: weeklySeries(uuid.Must(uuid.NewV4()), "Gym")}
	require.NoError(t, f.run(t, create))

	del := &actions.DeleteTasks{ID: create.IDs[4], Scope: actions.ScopeOnlyThis}
	require.NoError(t, f.run(t, del))

	assert.Equal(t, 1, del.Deleted)
	assert.Len(t, f.tasks(t), 9)
}

func TestDeleteTasks_KeepsLookalikeSeries(t *testing.T) {
	f := newFixture(t)
	first := &actions.CreateTasks{Tasks: weeklySeries(uuid.Must(uuid.NewV4()), "Gym")}
	require.NoError(t, f.run(t, first))
	second := &actions.CreateTasks{Tasks: weeklySeries(uuid.Must(uuid.NewV4()), "Gym")}
	require.NoError(t, f.run(t, second))

	require.NoError(t, f.run(t, &actions.DeleteTasks{ID: first.IDs[0], Scope: actions.ScopeThisAndFuture}))

	assert.Len(t, f.tasks(t), 10)
}

func TestDeleteTasks_LegacyStructuralMatch(t *testing.T) {
	f := newFixture(t)
	tasks := weeklySeries(uuid.Nil, "Gym")
	for _, task := range tasks {
		task.SeriesID = uuid.NullUUID{}
	}
	tasks[9].StartTime = "11:00"
	create := &actions.CreateTasks{Tasks: tasks}
	require.NoError(t, f.run(t, create))

	del := &actions.DeleteTasks{ID: create.IDs[7], Scope: actions.ScopeThisAndFuture}
	require.NoError(t, f.run(t, del))

	assert.Equal(t, 2, del.Deleted)
	assert.Len(t, f.tasks(t), 8)
}

func TestDeleteTasks_NotFound(t *testing.T) {
	f := newFixture(t)

	err := f.run(t, &actions.DeleteTasks{ID: uuid.Must(uuid.NewV4())})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

// -- regeneration --

func TestReplaceSeries_WeeklyToDaily(t *testing.T) {
	f := newFixture(t)
	create := &actions.CreateTasks{Tasks: weeklySeries(uuid.Must(uuid.NewV4()), "Gym")}
	require.NoError(t, f.run(t, create))

	end := date("2024-02-22")
	newSeries := uuid.Must(uuid.NewV4())
	replace := &actions.ReplaceSeries{
		ID: create.IDs[3],
		Build: func(target *table.Task) ([]*table.Task, error) {
			days, err := recurrence.Expand(recurrence.Rule{Frequency: recurrence.Daily, Start: target.Date, End: &end})
			if err != nil {
				return nil, err
			}
			out := make([]*table.Task, 0, len(days))
			for _, d := range days {
				out = append(out, &table.Task{
					SeriesID:           uuid.NullUUID{UUID: newSeries, Valid: true},
					Title:              "Gym diario",
					Date:               d,
					Status:             table.TaskStatusPending,
					Recurring:          true,
					RecurringFrequency: string(recurrence.Daily),
					ParentRecurring:    true,
				})
			}
			return out, nil
		},
	}
	require.NoError(t, f.run(t, replace))

	assert.Equal(t, 7, replace.Deleted)
	assert.Len(t, replace.IDs, 11)

	tasks := f.tasks(t)
	require.Len(t, tasks, 14)
	assert.Equal(t, "2024-01-22", tasks[0].Date.Format(time.DateOnly))
	assert.Equal(t, "2024-02-05", tasks[2].Date.Format(time.DateOnly))
	assert.Equal(t, "2024-02-12", tasks[3].Date.Format(time.DateOnly))
	assert.Equal(t, "Gym diario", tasks[3].Title)
	assert.Equal(t, "2024-02-22", tasks[13].Date.Format(time.DateOnly))
}

func TestReplaceSeries_BuildErrorRollsBack(t *testing.T) {
	f := newFixture(t)
	create := &actions.CreateTasks{Tasks: weeklySeries(uuid.Must(uuid.NewV4()), "Gym")}
	require.NoError(t, f.run(t, create))

	err := f.run(t, &actions.ReplaceSeries{
		ID: create.IDs[0],
		Build: func(*table.Task) ([]*table.Task, error) {
			return nil, nil
		},
	})
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
	assert.Len(t, f.tasks(t), 10)
}

// -- patch --

func TestPatchTasks(t *testing.T) {
	f := newFixture(t)
	create := &actions.CreateTasks{Tasks: weeklySeries(uuid.Must(uuid.NewV4()), "Gym")}
	require.NoError(t, f.run(t, create))

	patch := &actions.PatchTasks{
		IDs:   create.IDs[:2],
		Patch: table.TaskPatch{Status: omit.From(table.TaskStatusIncomplete)},
	}
	require.NoError(t, f.run(t, patch))

	tasks := f.tasks(t)
	assert.Equal(t, table.TaskStatusIncomplete, tasks[0].Status)
	assert.Equal(t, table.TaskStatusIncomplete, tasks[1].Status)
	assert.Equal(t, table.TaskStatusPending, tasks[2].Status)
	assert.Equal(t, "Gym", tasks[0].Title)
}
