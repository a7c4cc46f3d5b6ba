package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/storage/table"
	"github.com/carson-networks/budget-planner/internal/upload"
)

// Entry represents an income, expense or investment in the service layer.
type Entry struct {
	ID          uuid.UUID
	Kind        table.EntryKind
	Amount      int64
	Description string
	AccountName string
	Category    string
	Date        time.Time
	ImageURL    string
	CreatedAt   time.Time
}

// EntryInput is the editable part of an entry. Image, when set, is uploaded
// before anything is written.
type EntryInput struct {
	Amount      int64
	Description string
	AccountName string
	Category    string
	Date        time.Time
	Image       *upload.File
}

// EntryFilter narrows a listing. Month is "YYYY-MM"; Search matches the
// description, account or category, case-insensitively.
type EntryFilter struct {
	Month  string
	Search string
}

// EntryList is a filtered listing and the sum of its amounts.
type EntryList struct {
	Entries []Entry
	Total   int64
}

func entryFromStorage(kind table.EntryKind, row *table.Entry) Entry {
	return Entry{
		ID:          row.ID,
		Kind:        kind,
		Amount:      row.Amount,
		Description: row.Description,
		AccountName: row.AccountName,
		Category:    row.Category,
		Date:        row.Date,
		ImageURL:    row.ImageURL,
		CreatedAt:   row.CreatedAt,
	}
}
