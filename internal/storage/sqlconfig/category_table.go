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

var categoryColumns = []string{"id", "name", "kind", "icon", "description", "default_amount"}

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

var _ table.ICategoryTable = (*CategoriesTable)(nil)

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*table.Category, error) {
	q := psql.Select(
		sm.Columns(columns(categoryColumns)...),
		sm.From(tableCategories),
		sm.Where(whereID(id)),
	)
	return findOne[table.Category](ctx, t.exec, q)
}

func (t *CategoriesTable) List(ctx context.Context, kind *table.CategoryKind) ([]*table.Category, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns(categoryColumns)...),
		sm.From(tableCategories),
	}
	if kind != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("kind").EQ(psql.Arg(string(*kind)))))
	}
	queryMods = append(queryMods, sm.OrderBy("lower(name)").Asc())
	return findAll[table.Category](ctx, t.exec, psql.Select(queryMods...))
}

func (t *CategoriesTable) Insert(ctx context.Context, write *table.CategoryWrite) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	q := psql.Insert(
		im.Into(tableCategories, categoryColumns...),
		im.Values(psql.Arg(id, write.Name, string(write.Kind), write.Icon, write.Description, write.DefaultAmount)),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (t *CategoriesTable) Update(ctx context.Context, id uuid.UUID, write *table.CategoryWrite) error {
	q := psql.Update(
		um.Table(tableCategories),
		um.SetCol("name").ToArg(write.Name),
		um.SetCol("kind").ToArg(string(write.Kind)),
		um.SetCol("icon").ToArg(write.Icon),
		um.SetCol("description").ToArg(write.Description),
		um.SetCol("default_amount").ToArg(write.DefaultAmount),
		um.Where(whereID(id)),
	)
	return execOne(ctx, t.exec, q)
}

func (t *CategoriesTable) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, t.exec, psql.Delete(dm.From(tableCategories), dm.Where(whereID(id))))
}
