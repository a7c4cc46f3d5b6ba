package service

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// Account represents an account in the service layer.
type Account struct {
	ID          uuid.UUID
	Name        string
	Kind        string
	Balance     int64
	Icon        string
	Color       string
	Description string
}

func accountFromStorage(row *table.Account) Account {
	return Account{
		ID:          row.ID,
		Name:        row.Name,
		Kind:        row.Kind,
		Balance:     row.Balance,
		Icon:        row.Icon,
		Color:       row.Color,
		Description: row.Description,
	}
}

func accountToStorage(account Account) table.AccountWrite {
	return table.AccountWrite{
		Name:        account.Name,
		Kind:        account.Kind,
		Balance:     account.Balance,
		Icon:        account.Icon,
		Color:       account.Color,
		Description: account.Description,
	}
}
