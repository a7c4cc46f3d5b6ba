package table

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
)

// Category pre-fills the amount of new entries.
type Category struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	Name          string       `json:"nombre" db:"name"`
	Kind          CategoryKind `json:"tipo" db:"kind"`
	Icon          string       `json:"icono" db:"icon"`
	Description   string       `json:"descripcion,omitempty" db:"description"`
	DefaultAmount int64        `json:"montoPredefinido,omitempty" db:"default_amount"`
}

type CategoryWrite struct {
	Name          string
	Kind          CategoryKind
	Icon          string
	Description   string
	DefaultAmount int64
}

// ICategoryTable defines the storage operations for categories.
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	// List returns categories ordered by name. A nil kind returns all of them.
	List(ctx context.Context, kind *CategoryKind) ([]*Category, error)
	Insert(ctx context.Context, write *CategoryWrite) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, write *CategoryWrite) error
	Delete(ctx context.Context, id uuid.UUID) error
}
