package actions

import (
	"context"
	"errors"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/apperror"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// CreateAccount inserts an account. Names must be unique because entries
// reference their account by name.
type CreateAccount struct {
	Account table.AccountWrite

	// ID is set once the account is stored.
	ID uuid.UUID
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := validateAccount(&c.Account); err != nil {
		return err
	}
	if err := ensureAccountNameFree(ctx, writer.Accounts, c.Account.Name, uuid.Nil); err != nil {
		return err
	}

	id, err := writer.Accounts.Insert(ctx, &c.Account)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// UpdateAccount replaces an account's fields. A rename is carried over to
// every entry booked against the old name. Account.Balance is ignored: the
// stored balance is kept unless Balance is set.
type UpdateAccount struct {
	ID      uuid.UUID
	Account table.AccountWrite
	Balance omit.Val[int64]
}

func (u *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := validateAccount(&u.Account); err != nil {
		return err
	}
	existing, err := writer.Accounts.FindByIDForUpdate(ctx, u.ID)
	if errors.Is(err, table.ErrNotFound) {
		return apperror.NotFound("account not found")
	}
	if err != nil {
		return err
	}
	u.Account.Balance = u.Balance.GetOr(existing.Balance)
	if existing.Name != u.Account.Name {
		if err := ensureAccountNameFree(ctx, writer.Accounts, u.Account.Name, u.ID); err != nil {
			return err
		}
	}

	if err := writer.Accounts.Update(ctx, u.ID, &u.Account); err != nil {
		return err
	}

	if existing.Name != u.Account.Name {
		return renameEntryAccount(ctx, writer, existing.Name, u.Account.Name)
	}
	return nil
}

// DeleteAccount removes an account. Entries and transfers that reference it
// are kept; they show the account as deleted.
type DeleteAccount struct {
	ID uuid.UUID
}

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	err := writer.Accounts.Delete(ctx, d.ID)
	if errors.Is(err, table.ErrNotFound) {
		return apperror.NotFound("account not found")
	}
	return err
}

func validateAccount(account *table.AccountWrite) error {
	account.Name = strings.TrimSpace(account.Name)
	if account.Name == "" {
		return apperror.Invalid("account name is required")
	}
	return nil
}

func ensureAccountNameFree(ctx context.Context, accounts table.IAccountTable, name string, self uuid.UUID) error {
	existing, err := accounts.FindByName(ctx, name)
	if errors.Is(err, table.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != self {
		return apperror.Conflict("an account with this name already exists")
	}
	return nil
}

func renameEntryAccount(ctx context.Context, writer *storage.Writer, from, to string) error {
	for _, kind := range []table.EntryKind{table.EntryKindIncome, table.EntryKindExpense, table.EntryKindInvestment} {
		entries, err := writer.Entries(kind)
		if err != nil {
			return err
		}
		rows, err := entries.List(ctx)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if row.AccountName != from {
				continue
			}
			write := entryWriteOf(row)
			write.AccountName = to
			if err := entries.Update(ctx, row.ID, write); err != nil {
				return err
			}
		}
	}
	return nil
}
