package table

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// Account is a money container whose balance is only changed by the
// balance adjustment actions or by an explicit edit.
type Account struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"nombre" db:"name"`
	Kind        string    `json:"tipo" db:"kind"`
	Balance     int64     `json:"saldo" db:"balance"`
	Icon        string    `json:"icono" db:"icon"`
	Color       string    `json:"color" db:"color"`
	Description string    `json:"descripcion,omitempty" db:"description"`
}

// AccountWrite is the input for inserting or replacing an account.
type AccountWrite struct {
	Name        string
	Kind        string
	Balance     int64
	Icon        string
	Color       string
	Description string
}

// IAccountTable defines the storage operations for accounts.
type IAccountTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	// FindByIDForUpdate locks the account for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByName(ctx context.Context, name string) (*Account, error)
	// List returns every account ordered by balance, highest first.
	List(ctx context.Context) ([]*Account, error)
	Insert(ctx context.Context, write *AccountWrite) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, write *AccountWrite) error
	UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error
	Delete(ctx context.Context, id uuid.UUID) error
}
