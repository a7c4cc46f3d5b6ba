package docstore

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// Routines is the `rutinas` collection.
type Routines struct {
	docs collection[table.Routine]
}

var _ table.IRoutineTable = (*Routines)(nil)

func NewRoutines(scope Scope) *Routines {
	return &Routines{docs: newCollection[table.Routine](scope, table.CollectionRoutines)}
}

func (r *Routines) FindByID(_ context.Context, id uuid.UUID) (*table.Routine, error) {
	return r.docs.get(id)
}

func (r *Routines) List(_ context.Context, day string) ([]*table.Routine, error) {
	docs, err := r.docs.all()
	if err != nil {
		return nil, err
	}
	if day != "" {
		docs = slices.DeleteFunc(docs, func(doc *table.Routine) bool { return doc.Day != day })
	}
	slices.SortStableFunc(docs, func(x, y *table.Routine) int {
		if c := cmp.Compare(x.Time, y.Time); c != 0 {
			return c
		}
		return cmp.Compare(x.Title, y.Title)
	})
	return docs, nil
}

func (r *Routines) Insert(_ context.Context, write *table.RoutineWrite) (uuid.UUID, error) {
	id, err := newID()
	if err != nil {
		return uuid.Nil, err
	}
	doc := &table.Routine{ID: id, CreatedAt: time.Now().UTC()}
	applyRoutineWrite(doc, write)
	if err := r.docs.put(id, doc); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *Routines) Update(_ context.Context, id uuid.UUID, write *table.RoutineWrite) error {
	return r.docs.modify(id, func(doc *table.Routine) {
		applyRoutineWrite(doc, write)
	})
}

func (r *Routines) SetCompleted(_ context.Context, id uuid.UUID, completed bool) error {
	return r.docs.modify(id, func(doc *table.Routine) {
		doc.Completed = completed
	})
}

func (r *Routines) Delete(_ context.Context, id uuid.UUID) error {
	return r.docs.delete(id)
}

func applyRoutineWrite(doc *table.Routine, write *table.RoutineWrite) {
	doc.Title = write.Title
	doc.Description = write.Description
	doc.Day = write.Day
	doc.Time = write.Time
	doc.Icon = write.Icon
	doc.ImageURL = write.ImageURL
	doc.Completed = write.Completed
}
