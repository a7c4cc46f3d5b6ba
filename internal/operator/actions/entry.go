package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/apperror"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// CreateEntry stores an income, expense or investment and applies it to its
// account: the entry first, then the balance.
type CreateEntry struct {
	Kind  table.EntryKind
	Entry table.EntryWrite

	// ID is set once the entry is stored.
	ID uuid.UUID
}

func (c *CreateEntry) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := validateEntry(&c.Entry); err != nil {
		return err
	}
	entries, err := writer.Entries(c.Kind)
	if err != nil {
		return apperror.Invalid(err.Error())
	}

	account, err := writer.Accounts.FindByName(ctx, c.Entry.AccountName)
	if errors.Is(err, table.ErrNotFound) {
		return apperror.NotFound(fmt.Sprintf("account %q not found", c.Entry.AccountName))
	}
	if err != nil {
		return err
	}

	id, err := entries.Insert(ctx, &c.Entry)
	if err != nil {
		return err
	}
	c.ID = id

	return adjustBalance(ctx, writer.Accounts, account.ID, signedAmount(c.Kind, c.Entry.Amount))
}

// UpdateEntry replaces an entry's fields, keeping the stored image when no
// new one is given. With Reconcile the old effect is reversed on the old
// account before the new one is applied; without it the balances are left
// alone.
type UpdateEntry struct {
	Kind      table.EntryKind
	ID        uuid.UUID
	Entry     table.EntryWrite
	Reconcile bool
}

func (u *UpdateEntry) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := validateEntry(&u.Entry); err != nil {
		return err
	}
	entries, err := writer.Entries(u.Kind)
	if err != nil {
		return apperror.Invalid(err.Error())
	}

	old, err := entries.FindByID(ctx, u.ID)
	if errors.Is(err, table.ErrNotFound) {
		return apperror.NotFound("entry not found")
	}
	if err != nil {
		return err
	}

	if old.AccountName != u.Entry.AccountName || u.Reconcile {
		if _, err := writer.Accounts.FindByName(ctx, u.Entry.AccountName); errors.Is(err, table.ErrNotFound) {
			return apperror.NotFound(fmt.Sprintf("account %q not found", u.Entry.AccountName))
		} else if err != nil {
			return err
		}
	}

	if u.Reconcile {
		if err := adjustBalanceByName(ctx, writer.Accounts, old.AccountName, -signedAmount(u.Kind, old.Amount)); err != nil {
			return err
		}
	}

	if u.Entry.ImageURL == "" {
		u.Entry.ImageURL = old.ImageURL
	}
	if err := entries.Update(ctx, u.ID, &u.Entry); err != nil {
		return err
	}

	if u.Reconcile {
		return adjustBalanceByName(ctx, writer.Accounts, u.Entry.AccountName, signedAmount(u.Kind, u.Entry.Amount))
	}
	return nil
}

// DeleteEntry reverses the entry's effect on its account and deletes it.
type DeleteEntry struct {
	Kind table.EntryKind
	ID   uuid.UUID
}

func (d *DeleteEntry) Perform(ctx context.Context, writer *storage.Writer) error {
	entries, err := writer.Entries(d.Kind)
	if err != nil {
		return apperror.Invalid(err.Error())
	}

	entry, err := entries.FindByID(ctx, d.ID)
	if errors.Is(err, table.ErrNotFound) {
		return apperror.NotFound("entry not found")
	}
	if err != nil {
		return err
	}

	if err := adjustBalanceByName(ctx, writer.Accounts, entry.AccountName, -signedAmount(d.Kind, entry.Amount)); err != nil {
		return err
	}

	return entries.Delete(ctx, d.ID)
}

func validateEntry(entry *table.EntryWrite) error {
	if entry.Amount <= 0 {
		return apperror.Invalid("amount must be greater than zero")
	}
	if entry.AccountName == "" {
		return apperror.Invalid("account is required")
	}
	if entry.Date.IsZero() {
		return apperror.Invalid("date is required")
	}
	return nil
}

func entryWriteOf(entry *table.Entry) *table.EntryWrite {
	return &table.EntryWrite{
		Amount:      entry.Amount,
		Description: entry.Description,
		AccountName: entry.AccountName,
		Category:    entry.Category,
		Date:        entry.Date,
		ImageURL:    entry.ImageURL,
	}
}
