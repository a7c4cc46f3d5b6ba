package task

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/service"
)

type GetTaskInput struct {
	ID string `path:"id" format:"uuid" doc:"Task UUID"`
}

type GetTaskOutput struct {
	Body Task
}

type taskGetter interface {
	GetTask(ctx context.Context, id uuid.UUID) (*service.Task, error)
}

// GetTaskHandler handles GET /v1/task/{id}.
type GetTaskHandler struct {
	TaskService taskGetter
}

func NewGetTaskHandler(svc taskGetter) *GetTaskHandler {
	return &GetTaskHandler{TaskService: svc}
}

func (h *GetTaskHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-task",
		Method:      http.MethodGet,
		Path:        "/v1/task/{id}",
		Summary:     "Get a task",
		Tags:        []string{"Tasks"},
	}, h.handle)
}

func (h *GetTaskHandler) handle(ctx context.Context, input *GetTaskInput) (*GetTaskOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	task, err := h.TaskService.GetTask(ctx, id)
	if err != nil {
		return nil, params.Error(err, "failed to load task")
	}
	return &GetTaskOutput{Body: fromService(*task)}, nil
}
