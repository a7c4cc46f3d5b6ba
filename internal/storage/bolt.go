package storage

import (
	"context"

	bolt "go.etcd.io/bbolt"

	"github.com/carson-networks/budget-planner/internal/storage/docstore"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

type boltBackend struct {
	store *docstore.Store
}

// NewBoltStorage opens the embedded document store at path.
func NewBoltStorage(path string) (*Storage, error) {
	store, err := docstore.Open(path)
	if err != nil {
		return nil, err
	}
	return &Storage{
		Tables:  boltTables(store.Scope()),
		backend: &boltBackend{store: store},
	}, nil
}

func boltTables(scope docstore.Scope) Tables {
	return Tables{
		Accounts:    docstore.NewAccounts(scope),
		Incomes:     docstore.NewEntries(scope, table.CollectionIncomes),
		Expenses:    docstore.NewEntries(scope, table.CollectionExpenses),
		Investments: docstore.NewEntries(scope, table.CollectionInvestments),
		Transfers:   docstore.NewTransfers(scope),
		Categories:  docstore.NewCategories(scope),
		Tasks:       docstore.NewTasks(scope),
		Routines:    docstore.NewRoutines(scope),
	}
}

func (b *boltBackend) begin(_ context.Context) (*Writer, error) {
	tx, err := b.store.Begin()
	if err != nil {
		return nil, err
	}
	return &Writer{
		Tables: boltTables(docstore.TxScope(tx)),
		tx:     boltTx{tx: tx},
	}, nil
}

func (b *boltBackend) Close() error {
	return b.store.Close()
}

type boltTx struct {
	tx *bolt.Tx
}

func (t boltTx) Commit(_ context.Context) error {
	return t.tx.Commit()
}

func (t boltTx) Rollback(_ context.Context) error {
	return t.tx.Rollback()
}
