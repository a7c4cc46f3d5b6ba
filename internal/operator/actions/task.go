package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/apperror"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// CreateTasks stores a single task or every instance of a new series.
type CreateTasks struct {
	Tasks []*table.Task

	// IDs are set once the tasks are stored, in input order.
	IDs []uuid.UUID
}

func (c *CreateTasks) Perform(ctx context.Context, writer *storage.Writer) error {
	if len(c.Tasks) == 0 {
		return apperror.Invalid("the recurrence produced no dates")
	}
	c.IDs = make([]uuid.UUID, 0, len(c.Tasks))
	for _, task := range c.Tasks {
		id, err := writer.Tasks.Insert(ctx, task)
		if err != nil {
			return err
		}
		c.IDs = append(c.IDs, id)
	}
	return nil
}

// UpdateTask replaces the fields of one task in place.
type UpdateTask struct {
	Task *table.Task
}

func (u *UpdateTask) Perform(ctx context.Context, writer *storage.Writer) error {
	err := writer.Tasks.Update(ctx, u.Task)
	if errors.Is(err, table.ErrNotFound) {
		return apperror.NotFound("task not found")
	}
	return err
}

// DeleteTasks deletes one task, or with ScopeThisAndFuture every task of its
// series dated on or after it.
type DeleteTasks struct {
	ID    uuid.UUID
	Scope SeriesScope

	// Deleted is the number of tasks removed.
	Deleted int
}

func (d *DeleteTasks) Perform(ctx context.Context, writer *storage.Writer) error {
	targets, err := scopedTasks(ctx, writer, d.ID, d.Scope)
	if err != nil {
		return err
	}
	for _, task := range targets {
		if err := writer.Tasks.Delete(ctx, task.ID); err != nil {
			return err
		}
	}
	d.Deleted = len(targets)
	return nil
}

// ReplaceSeries deletes the target and its future siblings and inserts what
// Build returns for the target.
type ReplaceSeries struct {
	ID    uuid.UUID
	Build func(target *table.Task) ([]*table.Task, error)

	Deleted int
	IDs     []uuid.UUID
}

func (r *ReplaceSeries) Perform(ctx context.Context, writer *storage.Writer) error {
	targets, err := scopedTasks(ctx, writer, r.ID, ScopeThisAndFuture)
	if err != nil {
		return err
	}

	replacements, err := r.Build(targets[0])
	if err != nil {
		return err
	}

	for _, task := range targets {
		if err := writer.Tasks.Delete(ctx, task.ID); err != nil {
			return err
		}
	}
	r.Deleted = len(targets)

	create := &CreateTasks{Tasks: replacements}
	if err := create.Perform(ctx, writer); err != nil {
		return err
	}
	r.IDs = create.IDs
	return nil
}

// PatchTasks applies the same status/timer patch to every listed task.
type PatchTasks struct {
	IDs   []uuid.UUID
	Patch table.TaskPatch
}

func (p *PatchTasks) Perform(ctx context.Context, writer *storage.Writer) error {
	for _, id := range p.IDs {
		err := writer.Tasks.Patch(ctx, id, &p.Patch)
		if errors.Is(err, table.ErrNotFound) {
			return apperror.NotFound("task not found")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// scopedTasks loads the target and, for ScopeThisAndFuture, its future
// siblings. The target is always first.
func scopedTasks(ctx context.Context, writer *storage.Writer, id uuid.UUID, scope SeriesScope) ([]*table.Task, error) {
	target, err := writer.Tasks.FindByID(ctx, id)
	if errors.Is(err, table.ErrNotFound) {
		return nil, apperror.NotFound("task not found")
	}
	if err != nil {
		return nil, err
	}
	if scope != ScopeThisAndFuture {
		return []*table.Task{target}, nil
	}

	from := target.Date
	all, err := writer.Tasks.List(ctx, &table.TaskFilter{From: &from})
	if err != nil {
		return nil, err
	}

	siblings := futureSiblings(target, all)
	out := make([]*table.Task, 0, len(siblings))
	out = append(out, target)
	for _, task := range siblings {
		if task.ID != target.ID {
			out = append(out, task)
		}
	}
	return out, nil
}
