package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/operator/actions"
	"github.com/carson-networks/budget-planner/internal/recurrence"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// TransferService handles transfers between accounts.
type TransferService struct {
	storage  *storage.Storage
	operator processor
}

// NewTransferService creates a new TransferService.
func NewTransferService(store *storage.Storage, op processor) *TransferService {
	return &TransferService{storage: store, operator: op}
}

// CreateTransfer moves money between two accounts and returns the transfer ID.
func (s *TransferService) CreateTransfer(ctx context.Context, input TransferInput) (uuid.UUID, error) {
	action := &actions.CreateTransfer{Transfer: transferToStorage(input)}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.ID, nil
}

// UpdateTransfer reverses the old transfer and applies the new one.
func (s *TransferService) UpdateTransfer(ctx context.Context, id uuid.UUID, input TransferInput) error {
	return s.operator.Process(ctx, &actions.UpdateTransfer{ID: id, Transfer: transferToStorage(input)})
}

// DeleteTransfer reverses the transfer and deletes it.
func (s *TransferService) DeleteTransfer(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteTransfer{ID: id})
}

// GetTransfer retrieves one transfer by ID.
func (s *TransferService) GetTransfer(ctx context.Context, id uuid.UUID) (*Transfer, error) {
	row, err := s.storage.Transfers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	names, err := s.accountNames(ctx)
	if err != nil {
		return nil, err
	}
	transfer := transferFromStorage(row, names)
	return &transfer, nil
}

// ListTransfers returns the transfers matching filter, newest first.
func (s *TransferService) ListTransfers(ctx context.Context, filter TransferFilter) (*TransferList, error) {
	rows, err := s.storage.Transfers.List(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.accountNames(ctx)
	if err != nil {
		return nil, err
	}

	list := &TransferList{Transfers: []Transfer{}}
	for _, row := range rows {
		if !matchesMonth(row.Date, filter.Month) {
			continue
		}
		transfer := transferFromStorage(row, names)
		if !matchesSearch(filter.Search, transfer.Description, transfer.SourceAccountName, transfer.DestinationAccountName) {
			continue
		}
		list.Transfers = append(list.Transfers, transfer)
	}
	list.Count = len(list.Transfers)
	return list, nil
}

func (s *TransferService) accountNames(ctx context.Context) (map[uuid.UUID]string, error) {
	accounts, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(accounts))
	for _, account := range accounts {
		names[account.ID] = account.Name
	}
	return names, nil
}

func accountName(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok {
		return name
	}
	return DeletedAccountLabel
}

func transferFromStorage(row *table.Transfer, names map[uuid.UUID]string) Transfer {
	return Transfer{
		ID:                     row.ID,
		Amount:                 row.Amount,
		SourceAccountID:        row.SourceAccountID,
		SourceAccountName:      accountName(names, row.SourceAccountID),
		DestinationAccountID:   row.DestinationAccountID,
		DestinationAccountName: accountName(names, row.DestinationAccountID),
		Description:            row.Description,
		Date:                   row.Date,
		CreatedAt:              row.CreatedAt,
	}
}

func transferToStorage(input TransferInput) table.TransferWrite {
	write := table.TransferWrite{
		Amount:               input.Amount,
		SourceAccountID:      input.SourceAccountID,
		DestinationAccountID: input.DestinationAccountID,
		Description:          input.Description,
	}
	if !input.Date.IsZero() {
		write.Date = recurrence.Day(input.Date)
	}
	return write
}
