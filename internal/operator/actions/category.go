package actions

import (
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/apperror"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

type CreateCategory struct {
	Category table.CategoryWrite

	// ID is set once the category is stored.
	ID uuid.UUID
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := validateCategory(&c.Category); err != nil {
		return err
	}
	id, err := writer.Categories.Insert(ctx, &c.Category)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

type UpdateCategory struct {
	ID       uuid.UUID
	Category table.CategoryWrite
}

func (u *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := validateCategory(&u.Category); err != nil {
		return err
	}
	err := writer.Categories.Update(ctx, u.ID, &u.Category)
	if errors.Is(err, table.ErrNotFound) {
		return apperror.NotFound("category not found")
	}
	return err
}

type DeleteCategory struct {
	ID uuid.UUID
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	err := writer.Categories.Delete(ctx, d.ID)
	if errors.Is(err, table.ErrNotFound) {
		return apperror.NotFound("category not found")
	}
	return err
}

func validateCategory(category *table.CategoryWrite) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return apperror.Invalid("category name is required")
	}
	if category.Kind != table.CategoryKindIncome && category.Kind != table.CategoryKindExpense {
		return apperror.Invalid("category kind must be income or expense")
	}
	if category.DefaultAmount < 0 {
		return apperror.Invalid("default amount cannot be negative")
	}
	return nil
}
