package task

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// TaskIDInput addresses one task by path id.
type TaskIDInput struct {
	ID string `path:"id" format:"uuid" doc:"Task UUID"`
}

type PauseTaskBody struct {
	ElapsedSeconds int64 `json:"elapsedSeconds" minimum:"0" doc:"Seconds worked so far"`
}

// PauseTaskInput carries the seconds worked so far.
type PauseTaskInput struct {
	ID   string `path:"id" format:"uuid" doc:"Task UUID"`
	Body PauseTaskBody
}

type SetTaskStatusBody struct {
	Status string `json:"status" enum:"pending,in-progress,completed,incomplete"`
}

// SetTaskStatusInput sets a task status directly.
type SetTaskStatusInput struct {
	ID   string `path:"id" format:"uuid" doc:"Task UUID"`
	Body SetTaskStatusBody
}

type TaskTimerOutput struct {
	Status int
}

type taskTimer interface {
	StartTask(ctx context.Context, id uuid.UUID, now time.Time) error
	PauseTask(ctx context.Context, id uuid.UUID, elapsedSeconds int64) error
	CompleteTask(ctx context.Context, id uuid.UUID, now time.Time) error
	SetStatus(ctx context.Context, id uuid.UUID, status table.TaskStatus) error
}

// TaskTimerHandler handles the start, pause, complete and status endpoints.
type TaskTimerHandler struct {
	TaskService taskTimer
	Now         func() time.Time
}

func NewTaskTimerHandler(svc taskTimer) *TaskTimerHandler {
	return &TaskTimerHandler{TaskService: svc, Now: time.Now}
}

func (h *TaskTimerHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "start-task",
		Method:      http.MethodPost,
		Path:        "/v1/task/{id}/start",
		Summary:     "Start the task timer",
		Tags:        []string{"Tasks"},
	}, h.start)
	huma.Register(api, huma.Operation{
		OperationID: "pause-task",
		Method:      http.MethodPost,
		Path:        "/v1/task/{id}/pause",
		Summary:     "Pause the task timer",
		Description: "Stores the seconds worked so far. The task stays in progress.",
		Tags:        []string{"Tasks"},
	}, h.pause)
	huma.Register(api, huma.Operation{
		OperationID: "complete-task",
		Method:      http.MethodPost,
		Path:        "/v1/task/{id}/complete",
		Summary:     "Complete a task",
		Description: "Marks the task completed and resets its timer.",
		Tags:        []string{"Tasks"},
	}, h.complete)
	huma.Register(api, huma.Operation{
		OperationID: "set-task-status",
		Method:      http.MethodPost,
		Path:        "/v1/task/{id}/status",
		Summary:     "Set a task status",
		Tags:        []string{"Tasks"},
	}, h.setStatus)
}

func (h *TaskTimerHandler) start(ctx context.Context, input *TaskIDInput) (*TaskTimerOutput, error) {
	return h.run(input.ID, "failed to start task", func(id uuid.UUID) error {
		return h.TaskService.StartTask(ctx, id, h.Now())
	})
}

func (h *TaskTimerHandler) pause(ctx context.Context, input *PauseTaskInput) (*TaskTimerOutput, error) {
	return h.run(input.ID, "failed to pause task", func(id uuid.UUID) error {
		return h.TaskService.PauseTask(ctx, id, input.Body.ElapsedSeconds)
	})
}

func (h *TaskTimerHandler) complete(ctx context.Context, input *TaskIDInput) (*TaskTimerOutput, error) {
	return h.run(input.ID, "failed to complete task", func(id uuid.UUID) error {
		return h.TaskService.CompleteTask(ctx, id, h.Now())
	})
}

func (h *TaskTimerHandler) setStatus(ctx context.Context, input *SetTaskStatusInput) (*TaskTimerOutput, error) {
	return h.run(input.ID, "failed to set task status", func(id uuid.UUID) error {
		return h.TaskService.SetStatus(ctx, id, table.TaskStatus(input.Body.Status))
	})
}

func (h *TaskTimerHandler) run(rawID, failure string, fn func(uuid.UUID) error) (*TaskTimerOutput, error) {
	id, err := params.ID(rawID)
	if err != nil {
		return nil, err
	}
	if err := fn(id); err != nil {
		return nil, params.Error(err, failure)
	}
	return &TaskTimerOutput{Status: http.StatusNoContent}, nil
}
