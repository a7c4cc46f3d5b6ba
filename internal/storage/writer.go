package storage

import (
	"context"
)

type txn interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer is a set of tables bound to one transaction. Nothing is visible to
// readers until Commit.
type Writer struct {
	Tables
	tx txn
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
