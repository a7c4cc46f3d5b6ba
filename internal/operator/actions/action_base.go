package actions

import (
	"context"

	"github.com/carson-networks/budget-planner/internal/storage"
)

// IAction is one write workflow. Perform runs inside a single transaction:
// returning an error rolls back everything it wrote.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
