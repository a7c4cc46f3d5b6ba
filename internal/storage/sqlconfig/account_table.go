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

var accountColumns = []string{"id", "name", "kind", "balance", "icon", "color", "description"}

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ table.IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable on a database or a transaction.
func NewAccountsTable(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

// FindByID retrieves an account by primary key.
func (t *AccountsTable) FindByID(ctx context.Context, id uuid.UUID) (*table.Account, error) {
	q := psql.Select(
		sm.Columns(columns(accountColumns)...),
		sm.From(tableAccounts),
		sm.Where(whereID(id)),
	)
	return findOne[table.Account](ctx, t.exec, q)
}

// FindByIDForUpdate retrieves an account and locks its row until the
// transaction ends.
func (t *AccountsTable) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*table.Account, error) {
	q := psql.Select(
		sm.Columns(columns(accountColumns)...),
		sm.From(tableAccounts),
		sm.Where(whereID(id)),
		sm.ForUpdate(),
	)
	return findOne[table.Account](ctx, t.exec, q)
}

// FindByName retrieves the first account with the given name.
func (t *AccountsTable) FindByName(ctx context.Context, name string) (*table.Account, error) {
	q := psql.Select(
		sm.Columns(columns(accountColumns)...),
		sm.From(tableAccounts),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
		sm.OrderBy("id").Asc(),
		sm.Limit(1),
	)
	return findOne[table.Account](ctx, t.exec, q)
}

// List returns every account, highest balance first.
func (t *AccountsTable) List(ctx context.Context) ([]*table.Account, error) {
	q := psql.Select(
		sm.Columns(columns(accountColumns)...),
		sm.From(tableAccounts),
		sm.OrderBy("balance").Desc(),
		sm.OrderBy("name").Asc(),
	)
	return findAll[table.Account](ctx, t.exec, q)
}

// Insert creates a new account and returns its generated ID.
func (t *AccountsTable) Insert(ctx context.Context, write *table.AccountWrite) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	q := psql.Insert(
		im.Into(tableAccounts, accountColumns...),
		im.Values(psql.Arg(id, write.Name, write.Kind, write.Balance, write.Icon, write.Color, write.Description)),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update replaces every editable field of an account.
func (t *AccountsTable) Update(ctx context.Context, id uuid.UUID, write *table.AccountWrite) error {
	q := psql.Update(
		um.Table(tableAccounts),
		um.SetCol("name").ToArg(write.Name),
		um.SetCol("kind").ToArg(write.Kind),
		um.SetCol("balance").ToArg(write.Balance),
		um.SetCol("icon").ToArg(write.Icon),
		um.SetCol("color").ToArg(write.Color),
		um.SetCol("description").ToArg(write.Description),
		um.Where(whereID(id)),
	)
	return execOne(ctx, t.exec, q)
}

// UpdateBalance updates the balance for a given account.
func (t *AccountsTable) UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	q := psql.Update(
		um.Table(tableAccounts),
		um.SetCol("balance").ToArg(balance),
		um.Where(whereID(id)),
	)
	return execOne(ctx, t.exec, q)
}

func (t *AccountsTable) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, t.exec, psql.Delete(dm.From(tableAccounts), dm.Where(whereID(id))))
}
