package docstore

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// Tasks is the `tareas` collection.
type Tasks struct {
	docs collection[table.Task]
}

var _ table.ITaskTable = (*Tasks)(nil)

func NewTasks(scope Scope) *Tasks {
	return &Tasks{docs: newCollection[table.Task](scope, table.CollectionTasks)}
}

func (t *Tasks) FindByID(_ context.Context, id uuid.UUID) (*table.Task, error) {
	return t.docs.get(id)
}

func (t *Tasks) List(_ context.Context, filter *table.TaskFilter) ([]*table.Task, error) {
	docs, err := t.docs.all()
	if err != nil {
		return nil, err
	}
	if filter != nil {
		docs = slices.DeleteFunc(docs, func(doc *table.Task) bool {
			if filter.From != nil && doc.Date.Before(*filter.From) {
				return true
			}
			return filter.To != nil && doc.Date.After(*filter.To)
		})
	}
	slices.SortStableFunc(docs, func(x, y *table.Task) int {
		if c := x.Date.Compare(y.Date); c != 0 {
			return c
		}
		return cmp.Compare(x.StartTime, y.StartTime)
	})
	return docs, nil
}

func (t *Tasks) Insert(_ context.Context, task *table.Task) (uuid.UUID, error) {
	doc := *task
	if doc.ID == uuid.Nil {
		id, err := newID()
		if err != nil {
			return uuid.Nil, err
		}
		doc.ID = id
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	if err := t.docs.put(doc.ID, &doc); err != nil {
		return uuid.Nil, err
	}
	return doc.ID, nil
}

func (t *Tasks) Update(_ context.Context, task *table.Task) error {
	return t.docs.modify(task.ID, func(doc *table.Task) {
		createdAt := doc.CreatedAt
		*doc = *task
		doc.CreatedAt = createdAt
	})
}

func (t *Tasks) Patch(_ context.Context, id uuid.UUID, patch *table.TaskPatch) error {
	return t.docs.modify(id, func(doc *table.Task) {
		if status, ok := patch.Status.Get(); ok {
			doc.Status = status
		}
		if elapsed, ok := patch.ElapsedTime.Get(); ok {
			doc.ElapsedTime = elapsed
		}
		if startedAt, ok := patch.StartedAt.Get(); ok {
			doc.StartedAt = &startedAt
		}
		if completedAt, ok := patch.CompletedAt.Get(); ok {
			doc.CompletedAt = &completedAt
		}
	})
}

func (t *Tasks) Delete(_ context.Context, id uuid.UUID) error {
	return t.docs.delete(id)
}
