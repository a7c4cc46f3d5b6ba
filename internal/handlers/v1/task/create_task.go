package task

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/service"
)

// CreateTaskInput is the Huma input for creating a task or a series.
type CreateTaskInput struct {
	Body TaskBody
}

// CreateTaskResponse is the response body for creating a task.
type CreateTaskResponse struct {
	IDs []string `json:"ids" doc:"Created task UUIDs in date order"`
}

// CreateTaskOutput is the response for creating a task.
type CreateTaskOutput struct {
	Status int
	Body   CreateTaskResponse
}

// taskCreator is the interface for creating tasks.
type taskCreator interface {
	CreateTask(ctx context.Context, input service.TaskInput) ([]uuid.UUID, error)
}

// CreateTaskHandler handles POST /v1/task.
type CreateTaskHandler struct {
	TaskService taskCreator
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(svc taskCreator) *CreateTaskHandler {
	return &CreateTaskHandler{TaskService: svc}
}

// Register registers the create task endpoint with the Huma API.
func (h *CreateTaskHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-task",
		Method:      http.MethodPost,
		Path:        "/v1/task",
		Summary:     "Create a task",
		Description: "Creates one task, or every instance of a recurring series in a single transaction.",
		Tags:        []string{"Tasks"},
	}, h.handle)
}

func (h *CreateTaskHandler) handle(ctx context.Context, input *CreateTaskInput) (*CreateTaskOutput, error) {
	logData := logging.GetLogData(ctx)

	task, err := parseTaskBody(input.Body)
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	err = logging.Timed(logData, "createTaskMs", func() error {
		var err error
		ids, err = h.TaskService.CreateTask(ctx, task)
		return err
	})
	if err != nil {
		return nil, params.Error(err, "failed to create task")
	}

	if logData != nil {
		logData.AddData("taskCount", len(ids))
	}

	resp := CreateTaskResponse{IDs: make([]string, len(ids))}
	for i, id := range ids {
		resp.IDs[i] = id.String()
	}
	return &CreateTaskOutput{Status: http.StatusCreated, Body: resp}, nil
}
