package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

var entryColumns = []string{"id", "amount", "description", "account_name", "category", "entry_date", "image_url", "created_at"}

// EntriesTable provides access to one of the incomes, expenses or
// investments tables. They share a layout.
type EntriesTable struct {
	exec bob.Executor
	name string
}

var _ table.IEntryTable = (*EntriesTable)(nil)

func NewEntriesTable(exec bob.Executor, kind table.EntryKind) *EntriesTable {
	return &EntriesTable{exec: exec, name: EntryTableName(kind)}
}

// FindByID retrieves an entry by primary key.
func (t *EntriesTable) FindByID(ctx context.Context, id uuid.UUID) (*table.Entry, error) {
	q := psql.Select(
		sm.Columns(columns(entryColumns)...),
		sm.From(t.name),
		sm.Where(whereID(id)),
	)
	return findOne[table.Entry](ctx, t.exec, q)
}

// List returns every entry, newest first.
func (t *EntriesTable) List(ctx context.Context) ([]*table.Entry, error) {
	q := psql.Select(
		sm.Columns(columns(entryColumns)...),
		sm.From(t.name),
		sm.OrderBy("entry_date").Desc(),
		sm.OrderBy("created_at").Desc(),
	)
	return findAll[table.Entry](ctx, t.exec, q)
}

// Insert creates a new entry and returns its generated ID.
func (t *EntriesTable) Insert(ctx context.Context, write *table.EntryWrite) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	q := psql.Insert(
		im.Into(t.name, "id", "amount", "description", "account_name", "category", "entry_date", "image_url"),
		im.Values(psql.Arg(id, write.Amount, write.Description, write.AccountName, write.Category, write.Date, write.ImageURL)),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (t *EntriesTable) Update(ctx context.Context, id uuid.UUID, write *table.EntryWrite) error {
	q := psql.Update(
		um.Table(t.name),
		um.SetCol("amount").ToArg(write.Amount),
		um.SetCol("description").ToArg(write.Description),
		um.SetCol("account_name").ToArg(write.AccountName),
		um.SetCol("category").ToArg(write.Category),
		um.SetCol("entry_date").ToArg(write.Date),
		um.SetCol("image_url").ToArg(write.ImageURL),
		um.Where(whereID(id)),
	)
	return execOne(ctx, t.exec, q)
}

func (t *EntriesTable) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, t.exec, psql.Delete(dm.From(t.name), dm.Where(whereID(id))))
}
