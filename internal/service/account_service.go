package service

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/operator/actions"
	"github.com/carson-networks/budget-planner/internal/storage"
)

// AccountService handles account business logic.
type AccountService struct {
	storage  *storage.Storage
	operator processor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, op processor) *AccountService {
	return &AccountService{storage: store, operator: op}
}

// CreateAccount creates a new account and returns its ID.
func (s *AccountService) CreateAccount(ctx context.Context, account Account) (uuid.UUID, error) {
	action := &actions.CreateAccount{Account: accountToStorage(account)}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.ID, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	account := accountFromStorage(row)
	return &account, nil
}

// ListAccounts returns every account, highest balance first.
func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	rows, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts, nil
}

// UpdateAccount replaces an account's fields. Renames carry over to its entries.
// The balance is only overwritten when set.
func (s *AccountService) UpdateAccount(ctx context.Context, id uuid.UUID, account Account, balance omit.Val[int64]) error {
	return s.operator.Process(ctx, &actions.UpdateAccount{ID: id, Account: accountToStorage(account), Balance: balance})
}

// DeleteAccount deletes an account. Its entries and transfers are kept.
func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteAccount{ID: id})
}

// TotalBalance sums the balance of every account.
func (s *AccountService) TotalBalance(ctx context.Context) (int64, error) {
	rows, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, row := range rows {
		total += row.Balance
	}
	return total, nil
}
