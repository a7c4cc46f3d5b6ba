package task

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/operator/actions"
)

type DeleteTaskInput struct {
	ID    string `path:"id" format:"uuid" doc:"Task UUID"`
	Scope string `query:"scope" enum:"only-this,this-and-future" doc:"Reach of the delete on a series, default only-this"`
}

type DeleteTaskResponse struct {
	Deleted int `json:"deleted" doc:"Number of tasks removed"`
}

type DeleteTaskOutput struct {
	Body DeleteTaskResponse
}

type taskDeleter interface {
	DeleteTask(ctx context.Context, id uuid.UUID, scope actions.SeriesScope) (int, error)
}

// DeleteTaskHandler handles DELETE /v1/task/{id}.
type DeleteTaskHandler struct {
	TaskService taskDeleter
}

func NewDeleteTaskHandler(svc taskDeleter) *DeleteTaskHandler {
	return &DeleteTaskHandler{TaskService: svc}
}

func (h *DeleteTaskHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-task",
		Method:      http.MethodDelete,
		Path:        "/v1/task/{id}",
		Summary:     "Delete a task",
		Description: "Deletes one task, or with scope this-and-future every instance of its series from its date on.",
		Tags:        []string{"Tasks"},
	}, h.handle)
}

func (h *DeleteTaskHandler) handle(ctx context.Context, input *DeleteTaskInput) (*DeleteTaskOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	scope, err := actions.ParseSeriesScope(input.Scope)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid scope", err)
	}

	var deleted int
	err = logging.Timed(logging.GetLogData(ctx), "deleteTaskMs", func() error {
		var err error
		deleted, err = h.TaskService.DeleteTask(ctx, id, scope)
		return err
	})
	if err != nil {
		return nil, params.Error(err, "failed to delete task")
	}
	return &DeleteTaskOutput{Body: DeleteTaskResponse{Deleted: deleted}}, nil
}
