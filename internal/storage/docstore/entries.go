package docstore

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// Entries is one of the `ingresos`, `gastos` or `inversiones` collections.
type Entries struct {
	docs collection[table.Entry]
}

var _ table.IEntryTable = (*Entries)(nil)

func NewEntries(scope Scope, collectionName string) *Entries {
	return &Entries{docs: newCollection[table.Entry](scope, collectionName)}
}

func (e *Entries) FindByID(_ context.Context, id uuid.UUID) (*table.Entry, error) {
	return e.docs.get(id)
}

func (e *Entries) List(_ context.Context) ([]*table.Entry, error) {
	docs, err := e.docs.all()
	if err != nil {
		return nil, err
	}
	sortNewestFirst(docs, func(doc *table.Entry) (time.Time, time.Time) { return doc.Date, doc.CreatedAt })
	return docs, nil
}

func (e *Entries) Insert(_ context.Context, write *table.EntryWrite) (uuid.UUID, error) {
	id, err := newID()
	if err != nil {
		return uuid.Nil, err
	}
	doc := &table.Entry{ID: id, CreatedAt: time.Now().UTC()}
	applyEntryWrite(doc, write)
	if err := e.docs.put(id, doc); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (e *Entries) Update(_ context.Context, id uuid.UUID, write *table.EntryWrite) error {
	return e.docs.modify(id, func(doc *table.Entry) {
		applyEntryWrite(doc, write)
	})
}

func (e *Entries) Delete(_ context.Context, id uuid.UUID) error {
	return e.docs.delete(id)
}

func applyEntryWrite(doc *table.Entry, write *table.EntryWrite) {
	doc.Amount = write.Amount
	doc.Description = write.Description
	doc.AccountName = write.AccountName
	doc.Category = write.Category
	doc.Date = write.Date
	doc.ImageURL = write.ImageURL
}
