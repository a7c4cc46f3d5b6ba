package actions

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/apperror"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// signedAmount is the balance effect of an entry: incomes add, expenses and
// investments subtract.
func signedAmount(kind table.EntryKind, amount int64) int64 {
	if kind == table.EntryKindIncome {
		return amount
	}
	return -amount
}

// adjustBalance adds delta to the account balance.
func adjustBalance(ctx context.Context, accounts table.IAccountTable, id uuid.UUID, delta int64) error {
	account, err := accounts.FindByIDForUpdate(ctx, id)
	if err != nil {
		return err
	}
	return applyDelta(ctx, accounts, account, delta)
}

func applyDelta(ctx context.Context, accounts table.IAccountTable, account *table.Account, delta int64) error {
	if (delta > 0 && account.Balance > math.MaxInt64-delta) || (delta < 0 && account.Balance < math.MinInt64-delta) {
		return apperror.Conflict(fmt.Sprintf("balance of account %s would overflow", account.Name))
	}
	account.Balance += delta
	if err := accounts.UpdateBalance(ctx, account.ID, account.Balance); err != nil {
		return fmt.Errorf("update balance of %s: %w", account.ID, err)
	}
	return nil
}

// adjustBalanceIfExists is adjustBalance that logs and skips a deleted account.
func adjustBalanceIfExists(ctx context.Context, accounts table.IAccountTable, id uuid.UUID, delta int64) error {
	err := adjustBalance(ctx, accounts, id, delta)
	if errors.Is(err, table.ErrNotFound) {
		logging.FromContext(ctx).WithField("accountID", id.String()).Warn("Balance.adjust.accountMissing")
		return nil
	}
	return err
}

// adjustBalanceByName resolves an account by name and adds delta. A missing
// account is logged and skipped.
func adjustBalanceByName(ctx context.Context, accounts table.IAccountTable, name string, delta int64) error {
	account, err := accounts.FindByName(ctx, name)
	if errors.Is(err, table.ErrNotFound) {
		logging.FromContext(ctx).WithField("account", name).Warn("Balance.adjust.accountMissing")
		return nil
	}
	if err != nil {
		return err
	}
	return adjustBalance(ctx, accounts, account.ID, delta)
}
