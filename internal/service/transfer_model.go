package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// DeletedAccountLabel is shown in place of an account that no longer exists.
const DeletedAccountLabel = "Cuenta eliminada"

// Transfer represents a transfer in the service layer, with its account
// names resolved for display.
type Transfer struct {
	ID                     uuid.UUID
	Amount                 int64
	SourceAccountID        uuid.UUID
	SourceAccountName      string
	DestinationAccountID   uuid.UUID
	DestinationAccountName string
	Description            string
	Date                   time.Time
	CreatedAt              time.Time
}

type TransferInput struct {
	Amount               int64
	SourceAccountID      uuid.UUID
	DestinationAccountID uuid.UUID
	Description          string
	Date                 time.Time
}

// TransferFilter narrows a listing. Search matches the description and both
// account names.
type TransferFilter struct {
	Month  string
	Search string
}

type TransferList struct {
	Transfers []Transfer
	Count     int
}
