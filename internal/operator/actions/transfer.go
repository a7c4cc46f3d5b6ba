package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/apperror"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// CreateTransfer moves money between two accounts. Rejections happen before
// anything is written.
type CreateTransfer struct {
	Transfer table.TransferWrite

	// ID is set once the transfer is stored.
	ID uuid.UUID
}

func (c *CreateTransfer) Perform(ctx context.Context, writer *storage.Writer) error {
	source, destination, err := validateTransfer(ctx, writer.Accounts, &c.Transfer)
	if err != nil {
		return err
	}

	id, err := writer.Transfers.Insert(ctx, &c.Transfer)
	if err != nil {
		return err
	}
	c.ID = id

	return applyTransfer(ctx, writer.Accounts, source, destination, c.Transfer.Amount)
}

// UpdateTransfer reverses the old transfer, checks the new one against the
// reversed balances, stores it and applies it.
type UpdateTransfer struct {
	ID       uuid.UUID
	Transfer table.TransferWrite
}

func (u *UpdateTransfer) Perform(ctx context.Context, writer *storage.Writer) error {
	old, err := writer.Transfers.FindByID(ctx, u.ID)
	if errors.Is(err, table.ErrNotFound) {
		return apperror.NotFound("transfer not found")
	}
	if err != nil {
		return err
	}

	if err := reverseTransfer(ctx, writer.Accounts, old); err != nil {
		return err
	}

	source, destination, err := validateTransfer(ctx, writer.Accounts, &u.Transfer)
	if err != nil {
		return err
	}

	if err := writer.Transfers.Update(ctx, u.ID, &u.Transfer); err != nil {
		return err
	}

	return applyTransfer(ctx, writer.Accounts, source, destination, u.Transfer.Amount)
}

// DeleteTransfer reverses the transfer and deletes it.
type DeleteTransfer struct {
	ID uuid.UUID
}

func (d *DeleteTransfer) Perform(ctx context.Context, writer *storage.Writer) error {
	transfer, err := writer.Transfers.FindByID(ctx, d.ID)
	if errors.Is(err, table.ErrNotFound) {
		return apperror.NotFound("transfer not found")
	}
	if err != nil {
		return err
	}

	if err := reverseTransfer(ctx, writer.Accounts, transfer); err != nil {
		return err
	}

	return writer.Transfers.Delete(ctx, d.ID)
}

// validateTransfer loads and locks both accounts and checks the transfer
// against their current balances.
func validateTransfer(ctx context.Context, accounts table.IAccountTable, transfer *table.TransferWrite) (*table.Account, *table.Account, error) {
	if transfer.SourceAccountID == transfer.DestinationAccountID {
		return nil, nil, apperror.Invalid("source and destination accounts must differ")
	}
	if transfer.Amount <= 0 {
		return nil, nil, apperror.Invalid("amount must be greater than zero")
	}
	if transfer.Date.IsZero() {
		return nil, nil, apperror.Invalid("date is required")
	}

	source, err := accounts.FindByIDForUpdate(ctx, transfer.SourceAccountID)
	if errors.Is(err, table.ErrNotFound) {
		return nil, nil, apperror.NotFound("source account not found")
	}
	if err != nil {
		return nil, nil, err
	}

	destination, err := accounts.FindByIDForUpdate(ctx, transfer.DestinationAccountID)
	if errors.Is(err, table.ErrNotFound) {
		return nil, nil, apperror.NotFound("destination account not found")
	}
	if err != nil {
		return nil, nil, err
	}

	if source.Balance < transfer.Amount {
		return nil, nil, apperror.Conflict("insufficient balance in source account")
	}

	return source, destination, nil
}

func applyTransfer(ctx context.Context, accounts table.IAccountTable, source, destination *table.Account, amount int64) error {
	if err := applyDelta(ctx, accounts, source, -amount); err != nil {
		return err
	}
	return applyDelta(ctx, accounts, destination, amount)
}

// reverseTransfer credits the source and debits the destination, skipping
// accounts that no longer exist.
func reverseTransfer(ctx context.Context, accounts table.IAccountTable, transfer *table.Transfer) error {
	if err := adjustBalanceIfExists(ctx, accounts, transfer.SourceAccountID, transfer.Amount); err != nil {
		return err
	}
	return adjustBalanceIfExists(ctx, accounts, transfer.DestinationAccountID, -transfer.Amount)
}
