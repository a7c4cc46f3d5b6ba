package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
)

type DeleteCategoryInput struct {
	ID string `path:"id" format:"uuid" doc:"Category UUID"`
}

type DeleteCategoryOutput struct {
	Status int
}

type categoryDeleter interface {
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// DeleteCategoryHandler handles DELETE /v1/category/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/category/{id}",
		Summary:     "Delete a category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.CategoryService.DeleteCategory(ctx, id); err != nil {
		return nil, params.Error(err, "failed to delete category")
	}
	return &DeleteCategoryOutput{Status: http.StatusNoContent}, nil
}
