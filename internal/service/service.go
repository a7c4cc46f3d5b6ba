package service

import (
	"context"

	"github.com/carson-networks/budget-planner/internal/config"
	"github.com/carson-networks/budget-planner/internal/operator/actions"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/upload"
)

// processor runs a write workflow as one transaction. It is implemented by
// operator.OperatorDelegator.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Account   *AccountService
	Entry     *EntryService
	Transfer  *TransferService
	Category  *CategoryService
	Task      *TaskService
	Routine   *RoutineService
	Dashboard *DashboardService
}

// NewService wires every service to the same storage, operator and uploader.
func NewService(store *storage.Storage, op processor, uploader upload.Uploader, env *config.Config) *Service {
	return &Service{
		Account:   NewAccountService(store, op),
		Entry:     NewEntryService(store, op, uploader, env.ReconcileEntryEdits),
		Transfer:  NewTransferService(store, op),
		Category:  NewCategoryService(store, op),
		Task:      NewTaskService(store, op),
		Routine:   NewRoutineService(store, op, uploader),
		Dashboard: NewDashboardService(store),
	}
}
