package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/operator/actions"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// Category represents a category in the service layer.
type Category struct {
	ID            uuid.UUID
	Name          string
	Kind          table.CategoryKind
	Icon          string
	Description   string
	DefaultAmount int64
}

// CategoryService handles entry categories.
type CategoryService struct {
	storage  *storage.Storage
	operator processor
}

func NewCategoryService(store *storage.Storage, op processor) *CategoryService {
	return &CategoryService{storage: store, operator: op}
}

func (s *CategoryService) CreateCategory(ctx context.Context, category Category) (uuid.UUID, error) {
	action := &actions.CreateCategory{Category: categoryToStorage(category)}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.ID, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, category Category) error {
	return s.operator.Process(ctx, &actions.UpdateCategory{ID: id, Category: categoryToStorage(category)})
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteCategory{ID: id})
}

// ListCategories returns categories ordered by name. A nil kind returns all.
func (s *CategoryService) ListCategories(ctx context.Context, kind *table.CategoryKind) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = Category{
			ID:            row.ID,
			Name:          row.Name,
			Kind:          row.Kind,
			Icon:          row.Icon,
			Description:   row.Description,
			DefaultAmount: row.DefaultAmount,
		}
	}
	return categories, nil
}

func categoryToStorage(category Category) table.CategoryWrite {
	return table.CategoryWrite{
		Name:          category.Name,
		Kind:          category.Kind,
		Icon:          category.Icon,
		Description:   category.Description,
		DefaultAmount: category.DefaultAmount,
	}
}
