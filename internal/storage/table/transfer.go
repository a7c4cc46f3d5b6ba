package table

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Transfer moves an amount from one account to another.
type Transfer struct {
	ID                   uuid.UUID `json:"id" db:"id"`
	Amount               int64     `json:"monto" db:"amount"`
	SourceAccountID      uuid.UUID `json:"cuentaOrigen" db:"source_account_id"`
	DestinationAccountID uuid.UUID `json:"cuentaDestino" db:"destination_account_id"`
	Description          string    `json:"descripcion,omitempty" db:"description"`
	Date                 time.Time `json:"fecha" db:"transfer_date"`
	CreatedAt            time.Time `json:"fechaCreacion" db:"created_at"`
}

// TransferWrite is the input for inserting or replacing a transfer.
type TransferWrite struct {
	Amount               int64
	SourceAccountID      uuid.UUID
	DestinationAccountID uuid.UUID
	Description          string
	Date                 time.Time
}

// ITransferTable defines the storage operations for transfers.
type ITransferTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transfer, error)
	// List returns every transfer ordered by date, newest first.
	List(ctx context.Context) ([]*Transfer, error)
	Insert(ctx context.Context, write *TransferWrite) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, write *TransferWrite) error
	Delete(ctx context.Context, id uuid.UUID) error
}
