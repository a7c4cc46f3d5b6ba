package category

import (
	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/service"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// Category is the API response model for an entry category.
type Category struct {
	ID            string `json:"id" doc:"Category UUID"`
	Name          string `json:"name"`
	Kind          string `json:"kind" doc:"income or expense"`
	Icon          string `json:"icon,omitempty"`
	Description   string `json:"description,omitempty"`
	DefaultAmount string `json:"defaultAmount,omitempty" doc:"Amount suggested when the category is picked"`
}

// CategoryBody is the request body for creating or updating a category.
type CategoryBody struct {
	Name          string `json:"name" minLength:"1"`
	Kind          string `json:"kind" enum:"income,expense"`
	Icon          string `json:"icon,omitempty"`
	Description   string `json:"description,omitempty"`
	DefaultAmount string `json:"defaultAmount,omitempty" doc:"Suggested amount as a whole number"`
}

func parseCategoryBody(body CategoryBody) (service.Category, error) {
	var amount int64
	if body.DefaultAmount != "" {
		var err error
		if amount, err = params.Integer("defaultAmount", body.DefaultAmount); err != nil {
			return service.Category{}, err
		}
	}
	return service.Category{
		Name:          body.Name,
		Kind:          table.CategoryKind(body.Kind),
		Icon:          body.Icon,
		Description:   body.Description,
		DefaultAmount: amount,
	}, nil
}

func fromService(category service.Category) Category {
	out := Category{
		ID:          category.ID.String(),
		Name:        category.Name,
		Kind:        string(category.Kind),
		Icon:        category.Icon,
		Description: category.Description,
	}
	if category.DefaultAmount != 0 {
		out.DefaultAmount = params.FormatAmount(category.DefaultAmount)
	}
	return out
}
