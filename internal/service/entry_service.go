package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/apperror"
	"github.com/carson-networks/budget-planner/internal/operator/actions"
	"github.com/carson-networks/budget-planner/internal/recurrence"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/storage/table"
	"github.com/carson-networks/budget-planner/internal/upload"
)

// EntryService handles incomes, expenses and investments.
type EntryService struct {
	storage   *storage.Storage
	operator  processor
	uploader  upload.Uploader
	reconcile bool
}

// NewEntryService creates a new EntryService. With reconcile, edits move the
// balance effect from the old amount and account to the new ones.
func NewEntryService(store *storage.Storage, op processor, uploader upload.Uploader, reconcile bool) *EntryService {
	return &EntryService{storage: store, operator: op, uploader: uploader, reconcile: reconcile}
}

// CreateEntry uploads the image (if any), stores the entry and applies it to
// its account.
func (s *EntryService) CreateEntry(ctx context.Context, kind table.EntryKind, input EntryInput) (uuid.UUID, error) {
	write, err := s.entryWrite(ctx, kind, input, true)
	if err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateEntry{Kind: kind, Entry: *write}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.ID, nil
}

// UpdateEntry replaces an entry's fields. The stored image is kept unless a
// new one is given.
func (s *EntryService) UpdateEntry(ctx context.Context, kind table.EntryKind, id uuid.UUID, input EntryInput) error {
	entries, err := s.storage.Entries(kind)
	if err != nil {
		return apperror.Invalid(err.Error())
	}
	if _, err := entries.FindByID(ctx, id); err != nil {
		if errors.Is(err, table.ErrNotFound) {
			return apperror.NotFound("entry not found")
		}
		return err
	}

	write, err := s.entryWrite(ctx, kind, input, false)
	if err != nil {
		return err
	}
	return s.operator.Process(ctx, &actions.UpdateEntry{Kind: kind, ID: id, Entry: *write, Reconcile: s.reconcile})
}

// DeleteEntry reverses the entry's effect on its account and deletes it.
func (s *EntryService) DeleteEntry(ctx context.Context, kind table.EntryKind, id uuid.UUID) error {
	if !kind.Valid() {
		return apperror.Invalid("unknown entry kind")
	}
	return s.operator.Process(ctx, &actions.DeleteEntry{Kind: kind, ID: id})
}

// GetEntry retrieves one entry by ID.
func (s *EntryService) GetEntry(ctx context.Context, kind table.EntryKind, id uuid.UUID) (*Entry, error) {
	entries, err := s.storage.Entries(kind)
	if err != nil {
		return nil, apperror.Invalid(err.Error())
	}
	row, err := entries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entry := entryFromStorage(kind, row)
	return &entry, nil
}

// ListEntries returns the entries of one kind matching filter, newest first,
// with the total of their amounts.
func (s *EntryService) ListEntries(ctx context.Context, kind table.EntryKind, filter EntryFilter) (*EntryList, error) {
	entries, err := s.storage.Entries(kind)
	if err != nil {
		return nil, apperror.Invalid(err.Error())
	}
	rows, err := entries.List(ctx)
	if err != nil {
		return nil, err
	}

	list := &EntryList{Entries: []Entry{}}
	for _, row := range rows {
		if !matchesMonth(row.Date, filter.Month) {
			continue
		}
		if !matchesSearch(filter.Search, row.Description, row.AccountName, row.Category) {
			continue
		}
		list.Entries = append(list.Entries, entryFromStorage(kind, row))
		list.Total += row.Amount
	}
	return list, nil
}

// entryWrite validates the input, uploads the image and builds the storage
// input. Nothing is written when validation or the upload fails.
func (s *EntryService) entryWrite(ctx context.Context, kind table.EntryKind, input EntryInput, requireAccount bool) (*table.EntryWrite, error) {
	if !kind.Valid() {
		return nil, apperror.Invalid("unknown entry kind")
	}
	if input.Amount <= 0 {
		return nil, apperror.Invalid("amount must be greater than zero")
	}
	if input.Date.IsZero() {
		return nil, apperror.Invalid("date is required")
	}
	if input.AccountName == "" {
		return nil, apperror.Invalid("account is required")
	}
	if requireAccount {
		_, err := s.storage.Accounts.FindByName(ctx, input.AccountName)
		if errors.Is(err, table.ErrNotFound) {
			return nil, apperror.NotFound(fmt.Sprintf("account %q not found", input.AccountName))
		}
		if err != nil {
			return nil, err
		}
	}

	write := &table.EntryWrite{
		Amount:      input.Amount,
		Description: input.Description,
		AccountName: input.AccountName,
		Category:    input.Category,
		Date:        recurrence.Day(input.Date),
	}

	if input.Image != nil {
		url, err := s.uploader.Upload(ctx, input.Image)
		if err != nil {
			return nil, apperror.Upload(err)
		}
		write.ImageURL = url
	}
	return write, nil
}
