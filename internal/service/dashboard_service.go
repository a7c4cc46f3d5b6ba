package service

import (
	"context"
	"slices"

	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// RecentEntryCount is how many recent entries the dashboard shows.
const RecentEntryCount = 5

// Dashboard summarizes the ledger.
type Dashboard struct {
	TotalBalance  int64
	TotalIncome   int64
	TotalExpenses int64
	// Recent holds the newest incomes and expenses together, newest first.
	Recent []Entry
}

// DashboardService builds the dashboard summary.
type DashboardService struct {
	storage *storage.Storage
}

func NewDashboardService(store *storage.Storage) *DashboardService {
	return &DashboardService{storage: store}
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	accounts, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	incomes, err := s.storage.Incomes.List(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.storage.Expenses.List(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{Recent: []Entry{}}
	for _, account := range accounts {
		dashboard.TotalBalance += account.Balance
	}

	var recent []Entry
	for _, row := range incomes {
		dashboard.TotalIncome += row.Amount
		recent = append(recent, entryFromStorage(table.EntryKindIncome, row))
	}
	for _, row := range expenses {
		dashboard.TotalExpenses += row.Amount
		recent = append(recent, entryFromStorage(table.EntryKindExpense, row))
	}

	slices.SortStableFunc(recent, func(a, b Entry) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	dashboard.Recent = append(dashboard.Recent, recent[:min(len(recent), RecentEntryCount)]...)
	return dashboard, nil
}
