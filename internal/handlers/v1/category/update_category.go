package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/service"
)

type UpdateCategoryInput struct {
	ID   string `path:"id" format:"uuid" doc:"Category UUID"`
	Body CategoryBody
}

type UpdateCategoryOutput struct {
	Status int
}

type categoryUpdater interface {
	UpdateCategory(ctx context.Context, id uuid.UUID, category service.Category) error
}

// UpdateCategoryHandler handles PUT /v1/category/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/v1/category/{id}",
		Summary:     "Update a category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	category, err := parseCategoryBody(input.Body)
	if err != nil {
		return nil, err
	}
	if err := h.CategoryService.UpdateCategory(ctx, id, category); err != nil {
		return nil, params.Error(err, "failed to update category")
	}
	return &UpdateCategoryOutput{Status: http.StatusNoContent}, nil
}
