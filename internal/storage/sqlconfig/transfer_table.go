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

var transferColumns = []string{"id", "amount", "source_account_id", "destination_account_id", "description", "transfer_date", "created_at"}

// TransfersTable provides access to the transfers table.
type TransfersTable struct {
	exec bob.Executor
}

var _ table.ITransferTable = (*TransfersTable)(nil)

func NewTransfersTable(exec bob.Executor) *TransfersTable {
	return &TransfersTable{exec: exec}
}

func (t *TransfersTable) FindByID(ctx context.Context, id uuid.UUID) (*table.Transfer, error) {
	q := psql.Select(
		sm.Columns(columns(transferColumns)...),
		sm.From(tableTransfers),
		sm.Where(whereID(id)),
	)
	return findOne[table.Transfer](ctx, t.exec, q)
}

func (t *TransfersTable) List(ctx context.Context) ([]*table.Transfer, error) {
	q := psql.Select(
		sm.Columns(columns(transferColumns)...),
		sm.From(tableTransfers),
		sm.OrderBy("transfer_date").Desc(),
		sm.OrderBy("created_at").Desc(),
	)
	return findAll[table.Transfer](ctx, t.exec, q)
}

func (t *TransfersTable) Insert(ctx context.Context, write *table.TransferWrite) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	q := psql.Insert(
		im.Into(tableTransfers, "id", "amount", "source_account_id", "destination_account_id", "description", "transfer_date"),
		im.Values(psql.Arg(id, write.Amount, write.SourceAccountID, write.DestinationAccountID, write.Description, write.Date)),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (t *TransfersTable) Update(ctx context.Context, id uuid.UUID, write *table.TransferWrite) error {
	q := psql.Update(
		um.Table(tableTransfers),
		um.SetCol("amount").ToArg(write.Amount),
		um.SetCol("source_account_id").ToArg(write.SourceAccountID),
		um.SetCol("destination_account_id").ToArg(write.DestinationAccountID),
		um.SetCol("description").ToArg(write.Description),
		um.SetCol("transfer_date").ToArg(write.Date),
		um.Where(whereID(id)),
	)
	return execOne(ctx, t.exec, q)
}

func (t *TransfersTable) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, t.exec, psql.Delete(dm.From(tableTransfers), dm.Where(whereID(id))))
}
