package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/service"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

type ListCategoriesInput struct {
	Kind string `query:"kind" enum:"income,expense" doc:"Only categories of this kind"`
}

type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"Categories ordered by name"`
}

type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

type categoryLister interface {
	ListCategories(ctx context.Context, kind *table.CategoryKind) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	var kind *table.CategoryKind
	if input.Kind != "" {
		k := table.CategoryKind(input.Kind)
		kind = &k
	}

	categories, err := h.CategoryService.ListCategories(ctx, kind)
	if err != nil {
		return nil, params.Error(err, "failed to list categories")
	}

	resp := ListCategoriesResponseBody{Categories: make([]Category, len(categories))}
	for i, category := range categories {
		resp.Categories[i] = fromService(category)
	}
	return &ListCategoriesOutput{Body: resp}, nil
}
