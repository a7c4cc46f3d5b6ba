package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/apperror"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// CreateRoutines stores one routine document per selected weekday.
type CreateRoutines struct {
	Routines []table.RoutineWrite

	IDs []uuid.UUID
}

func (c *CreateRoutines) Perform(ctx context.Context, writer *storage.Writer) error {
	if len(c.Routines) == 0 {
		return apperror.Invalid("select at least one day")
	}
	c.IDs = make([]uuid.UUID, 0, len(c.Routines))
	for i := range c.Routines {
		id, err := writer.Routines.Insert(ctx, &c.Routines[i])
		if err != nil {
			return err
		}
		c.IDs = append(c.IDs, id)
	}
	return nil
}

// UpdateRoutine replaces a routine's fields and keeps its completion flag.
type UpdateRoutine struct {
	ID      uuid.UUID
	Routine table.RoutineWrite
}

func (u *UpdateRoutine) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Routines.FindByID(ctx, u.ID)
	if errors.Is(err, table.ErrNotFound) {
		return apperror.NotFound("routine not found")
	}
	if err != nil {
		return err
	}
	u.Routine.Completed = existing.Completed
	if u.Routine.ImageURL == "" {
		u.Routine.ImageURL = existing.ImageURL
	}
	return writer.Routines.Update(ctx, u.ID, &u.Routine)
}

// ToggleRoutine flips a routine's completion flag.
type ToggleRoutine struct {
	ID uuid.UUID

	// Completed is the new state.
	Completed bool
}

func (t *ToggleRoutine) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Routines.FindByID(ctx, t.ID)
	if errors.Is(err, table.ErrNotFound) {
		return apperror.NotFound("routine not found")
	}
	if err != nil {
		return err
	}
	t.Completed = !existing.Completed
	return writer.Routines.SetCompleted(ctx, t.ID, t.Completed)
}

type DeleteRoutine struct {
	ID uuid.UUID
}

func (d *DeleteRoutine) Perform(ctx context.Context, writer *storage.Writer) error {
	err := writer.Routines.Delete(ctx, d.ID)
	if errors.Is(err, table.ErrNotFound) {
		return apperror.NotFound("routine not found")
	}
	return err
}
