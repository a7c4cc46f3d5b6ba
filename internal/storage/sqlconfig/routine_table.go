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

var routineColumns = []string{"id", "title", "description", "day", "time_of_day", "icon", "image_url", "completed", "created_at"}

// RoutinesTable provides access to the routines table.
type RoutinesTable struct {
	exec bob.Executor
}

var _ table.IRoutineTable = (*RoutinesTable)(nil)

func NewRoutinesTable(exec bob.Executor) *RoutinesTable {
	return &RoutinesTable{exec: exec}
}

func (t *RoutinesTable) FindByID(ctx context.Context, id uuid.UUID) (*table.Routine, error) {
	q := psql.Select(
		sm.Columns(columns(routineColumns)...),
		sm.From(tableRoutines),
		sm.Where(whereID(id)),
	)
	return findOne[table.Routine](ctx, t.exec, q)
}

func (t *RoutinesTable) List(ctx context.Context, day string) ([]*table.Routine, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns(routineColumns)...),
		sm.From(tableRoutines),
	}
	if day != "" {
		queryMods = append(queryMods, sm.Where(psql.Quote("day").EQ(psql.Arg(day))))
	}
	queryMods = append(queryMods,
		sm.OrderBy("time_of_day").Asc(),
		sm.OrderBy("title").Asc(),
	)
	return findAll[table.Routine](ctx, t.exec, psql.Select(queryMods...))
}

func (t *RoutinesTable) Insert(ctx context.Context, write *table.RoutineWrite) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	q := psql.Insert(
		im.Into(tableRoutines, "id", "title", "description", "day", "time_of_day", "icon", "image_url", "completed"),
		im.Values(psql.Arg(id, write.Title, write.Description, write.Day, write.Time, write.Icon, write.ImageURL, write.Completed)),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (t *RoutinesTable) Update(ctx context.Context, id uuid.UUID, write *table.RoutineWrite) error {
	q := psql.Update(
		um.Table(tableRoutines),
		um.SetCol("title").ToArg(write.Title),
		um.SetCol("description").ToArg(write.Description),
		um.SetCol("day").ToArg(write.Day),
		um.SetCol("time_of_day").ToArg(write.Time),
		um.SetCol("icon").ToArg(write.Icon),
		um.SetCol("image_url").ToArg(write.ImageURL),
		um.SetCol("completed").ToArg(write.Completed),
		um.Where(whereID(id)),
	)
	return execOne(ctx, t.exec, q)
}

func (t *RoutinesTable) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	q := psql.Update(
		um.Table(tableRoutines),
		um.SetCol("completed").ToArg(completed),
		um.Where(whereID(id)),
	)
	return execOne(ctx, t.exec, q)
}

func (t *RoutinesTable) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, t.exec, psql.Delete(dm.From(tableRoutines), dm.Where(whereID(id))))
}
