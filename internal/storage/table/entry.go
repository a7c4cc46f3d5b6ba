package table

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// EntryKind selects the collection an entry lives in.
type EntryKind string

const (
	EntryKindIncome     EntryKind = "income"
	EntryKindExpense    EntryKind = "expense"
	EntryKindInvestment EntryKind = "investment"
)

// Valid reports whether k is a known entry kind.
func (k EntryKind) Valid() bool {
	switch k {
	case EntryKindIncome, EntryKindExpense, EntryKindInvestment:
		return true
	}
	return false
}

// Entry is an income, expense or investment booked against one account,
// referenced by name.
type Entry struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Amount      int64     `json:"monto" db:"amount"`
	Description string    `json:"descripcion" db:"description"`
	AccountName string    `json:"cuenta" db:"account_name"`
	Category    string    `json:"categoria,omitempty" db:"category"`
	Date        time.Time `json:"fecha" db:"entry_date"`
	ImageURL    string    `json:"imagen,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"fechaCreacion" db:"created_at"`
}

// EntryWrite is the input for inserting or replacing an entry.
type EntryWrite struct {
	Amount      int64
	Description string
	AccountName string
	Category    string
	Date        time.Time
	ImageURL    string
}

// IEntryTable defines the storage operations for one entry kind.
type IEntryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Entry, error)
	// List returns every entry ordered by date, newest first.
	List(ctx context.Context) ([]*Entry, error)
	Insert(ctx context.Context, write *EntryWrite) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, write *EntryWrite) error
	Delete(ctx context.Context, id uuid.UUID) error
}
