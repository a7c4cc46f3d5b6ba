package docstore

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// Transfers is the `transacciones` collection.
type Transfers struct {
	docs collection[table.Transfer]
}

var _ table.ITransferTable = (*Transfers)(nil)

func NewTransfers(scope Scope) *Transfers {
	return &Transfers{docs: newCollection[table.Transfer](scope, table.CollectionTransfers)}
}

func (t *Transfers) FindByID(_ context.Context, id uuid.UUID) (*table.Transfer, error) {
	return t.docs.get(id)
}

func (t *Transfers) List(_ context.Context) ([]*table.Transfer, error) {
	docs, err := t.docs.all()
	if err != nil {
		return nil, err
	}
	sortNewestFirst(docs, func(doc *table.Transfer) (time.Time, time.Time) { return doc.Date, doc.CreatedAt })
	return docs, nil
}

func (t *Transfers) Insert(_ context.Context, write *table.TransferWrite) (uuid.UUID, error) {
	id, err := newID()
	if err != nil {
		return uuid.Nil, err
	}
	doc := &table.Transfer{ID: id, CreatedAt: time.Now().UTC()}
	applyTransferWrite(doc, write)
	if err := t.docs.put(id, doc); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (t *Transfers) Update(_ context.Context, id uuid.UUID, write *table.TransferWrite) error {
	return t.docs.modify(id, func(doc *table.Transfer) {
		applyTransferWrite(doc, write)
	})
}

func (t *Transfers) Delete(_ context.Context, id uuid.UUID) error {
	return t.docs.delete(id)
}

func applyTransferWrite(doc *table.Transfer, write *table.TransferWrite) {
	doc.Amount = write.Amount
	doc.SourceAccountID = write.SourceAccountID
	doc.DestinationAccountID = write.DestinationAccountID
	doc.Description = write.Description
	doc.Date = write.Date
}
