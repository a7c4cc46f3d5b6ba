package storage

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-planner/internal/storage/sqlconfig"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

type postgresBackend struct {
	db  *sql.DB
	bdb bob.DB
}

// NewPostgresStorage connects to Postgres. The schema is managed by
// scripts/db_migrations.
func NewPostgresStorage(ctx context.Context, dsn string) (*Storage, error) {
	db, err := sqlconfig.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	bdb := bob.NewDB(db)
	return &Storage{
		Tables:  postgresTables(bdb),
		backend: &postgresBackend{db: db, bdb: bdb},
	}, nil
}

func postgresTables(exec bob.Executor) Tables {
	return Tables{
		Accounts:    sqlconfig.NewAccountsTable(exec),
		Incomes:     sqlconfig.NewEntriesTable(exec, table.EntryKindIncome),
		Expenses:    sqlconfig.NewEntriesTable(exec, table.EntryKindExpense),
		Investments: sqlconfig.NewEntriesTable(exec, table.EntryKindInvestment),
		Transfers:   sqlconfig.NewTransfersTable(exec),
		Categories:  sqlconfig.NewCategoriesTable(exec),
		Tasks:       sqlconfig.NewTasksTable(exec),
		Routines:    sqlconfig.NewRoutinesTable(exec),
	}
}

func (p *postgresBackend) begin(ctx context.Context) (*Writer, error) {
	tx, err := p.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Writer{
		Tables: postgresTables(tx),
		tx:     tx,
	}, nil
}

func (p *postgresBackend) Close() error {
	return p.db.Close()
}
