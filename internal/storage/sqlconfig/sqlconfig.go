// Package sqlconfig implements the storage tables on Postgres with the bob
// query builder.
package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

const (
	tableAccounts    = "accounts"
	tableIncomes     = "incomes"
	tableExpenses    = "expenses"
	tableInvestments = "investments"
	tableTransfers   = "transfers"
	tableCategories  = "categories"
	tableTasks       = "tasks"
	tableRoutines    = "routines"
)

// EntryTableName returns the table holding entries of the given kind.
func EntryTableName(kind table.EntryKind) string {
	switch kind {
	case table.EntryKindIncome:
		return tableIncomes
	case table.EntryKindExpense:
		return tableExpenses
	default:
		return tableInvestments
	}
}

// Open opens and pings the Postgres database.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func whereID(id any) dialect.Expression {
	return psql.Quote("id").EQ(psql.Arg(id))
}

func columns(names []string) []any {
	cols := make([]any, len(names))
	for i, name := range names {
		cols[i] = name
	}
	return cols
}

func findOne[T any](ctx context.Context, exec bob.Executor, q bob.Query) (*T, error) {
	row, err := bob.One(ctx, exec, q, scan.StructMapper[T]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, table.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func findAll[T any](ctx context.Context, exec bob.Executor, q bob.Query) ([]*T, error) {
	rows, err := bob.All(ctx, exec, q, scan.StructMapper[T]())
	if err != nil {
		return nil, err
	}
	result := make([]*T, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// execOne runs q and reports table.ErrNotFound when no row was touched.
func execOne(ctx context.Context, exec bob.Executor, q bob.Query) error {
	res, err := bob.Exec(ctx, exec, q)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return table.ErrNotFound
	}
	return nil
}
