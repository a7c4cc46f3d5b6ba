package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/service"
)

type CreateCategoryInput struct {
	Body CategoryBody
}

type CreateCategoryResponse struct {
	ID string `json:"id" doc:"Created category UUID"`
}

type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponse
}

type categoryCreator interface {
	CreateCategory(ctx context.Context, category service.Category) (uuid.UUID, error)
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/category",
		Summary:     "Create a category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	category, err := parseCategoryBody(input.Body)
	if err != nil {
		return nil, err
	}

	var id uuid.UUID
	err = logging.Timed(logData, "createCategoryMs", func() error {
		var err error
		id, err = h.CategoryService.CreateCategory(ctx, category)
		return err
	})
	if err != nil {
		return nil, params.Error(err, "failed to create category")
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   CreateCategoryResponse{ID: id.String()},
	}, nil
}
