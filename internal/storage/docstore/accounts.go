package docstore

import (
	"cmp"
	"context"
	"slices"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// Accounts is the `cuentas` collection.
type Accounts struct {
	docs collection[table.Account]
}

var _ table.IAccountTable = (*Accounts)(nil)

func NewAccounts(scope Scope) *Accounts {
	return &Accounts{docs: newCollection[table.Account](scope, table.CollectionAccounts)}
}

func (a *Accounts) FindByID(_ context.Context, id uuid.UUID) (*table.Account, error) {
	return a.docs.get(id)
}

// FindByIDForUpdate is FindByID: bbolt already serializes writers.
func (a *Accounts) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*table.Account, error) {
	return a.FindByID(ctx, id)
}

func (a *Accounts) FindByName(_ context.Context, name string) (*table.Account, error) {
	docs, err := a.docs.all()
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if doc.Name == name {
			return doc, nil
		}
	}
	return nil, table.ErrNotFound
}

func (a *Accounts) List(_ context.Context) ([]*table.Account, error) {
	docs, err := a.docs.all()
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(docs, func(x, y *table.Account) int {
		if c := cmp.Compare(y.Balance, x.Balance); c != 0 {
			return c
		}
		return cmp.Compare(x.Name, y.Name)
	})
	return docs, nil
}

func (a *Accounts) Insert(_ context.Context, write *table.AccountWrite) (uuid.UUID, error) {
	id, err := newID()
	if err != nil {
		return uuid.Nil, err
	}
	doc := &table.Account{
		ID:          id,
		Name:        write.Name,
		Kind:        write.Kind,
		Balance:     write.Balance,
		Icon:        write.Icon,
		Color:       write.Color,
		Description: write.Description,
	}
	if err := a.docs.put(id, doc); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (a *Accounts) Update(_ context.Context, id uuid.UUID, write *table.AccountWrite) error {
	return a.docs.modify(id, func(doc *table.Account) {
		doc.Name = write.Name
		doc.Kind = write.Kind
		doc.Balance = write.Balance
		doc.Icon = write.Icon
		doc.Color = write.Color
		doc.Description = write.Description
	})
}

func (a *Accounts) UpdateBalance(_ context.Context, id uuid.UUID, balance int64) error {
	return a.docs.modify(id, func(doc *table.Account) {
		doc.Balance = balance
	})
}

func (a *Accounts) Delete(_ context.Context, id uuid.UUID) error {
	return a.docs.delete(id)
}
