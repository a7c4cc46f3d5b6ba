package task

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/operator/actions"
	"github.com/carson-networks/budget-planner/internal/service"
)

// EditTaskInput is the Huma input for editing a task or the rest of its
// series.
type EditTaskInput struct {
	ID    string `path:"id" format:"uuid" doc:"Task UUID"`
	Scope string `query:"scope" enum:"only-this,this-and-future" doc:"Reach of the edit on a series, default only-this"`
	Body  TaskBody
}

// EditTaskResponse reports what the edit touched.
type EditTaskResponse struct {
	Updated int      `json:"updated" doc:"Tasks edited in place"`
	Deleted int      `json:"deleted" doc:"Series instances removed"`
	Created []string `json:"created" doc:"UUIDs of the regenerated instances"`
}

type EditTaskOutput struct {
	Body EditTaskResponse
}

type taskEditor interface {
	EditTask(ctx context.Context, id uuid.UUID, input service.TaskInput, scope actions.SeriesScope) (*service.TaskEditResult, error)
}

// EditTaskHandler handles PUT /v1/task/{id}.
type EditTaskHandler struct {
	TaskService taskEditor
}

func NewEditTaskHandler(svc taskEditor) *EditTaskHandler {
	return &EditTaskHandler{TaskService: svc}
}

func (h *EditTaskHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "edit-task",
		Method:      http.MethodPut,
		Path:        "/v1/task/{id}",
		Summary:     "Edit a task",
		Description: "Edits one task. With scope this-and-future the series is regenerated from this task's date under the new settings.",
		Tags:        []string{"Tasks"},
	}, h.handle)
}

func (h *EditTaskHandler) handle(ctx context.Context, input *EditTaskInput) (*EditTaskOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	scope, err := actions.ParseSeriesScope(input.Scope)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid scope", err)
	}
	task, err := parseTaskBody(input.Body)
	if err != nil {
		return nil, err
	}

	var result *service.TaskEditResult
	err = logging.Timed(logData, "editTaskMs", func() error {
		var err error
		result, err = h.TaskService.EditTask(ctx, id, task, scope)
		return err
	})
	if err != nil {
		return nil, params.Error(err, "failed to edit task")
	}

	if logData != nil {
		logData.AddData("scope", string(scope))
		logData.AddData("deleted", result.Deleted)
	}

	resp := EditTaskResponse{Updated: result.Updated, Deleted: result.Deleted, Created: make([]string, len(result.Created))}
	for i, id := range result.Created {
		resp.Created[i] = id.String()
	}
	return &EditTaskOutput{Body: resp}, nil
}
