package task

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/service"
)

// ListTasksInput is the Huma input for the calendar view.
type ListTasksInput struct {
	From string `query:"from" required:"true" format:"date" doc:"First day (YYYY-MM-DD)"`
	To   string `query:"to" required:"true" format:"date" doc:"Last day, inclusive (YYYY-MM-DD)"`
}

// ListTasksResponseBody holds a list of tasks.
type ListTasksResponseBody struct {
	Tasks []Task `json:"tasks"`
}

// ListTasksOutput is the Huma output for listing tasks.
type ListTasksOutput struct {
	Body ListTasksResponseBody
}

type taskRangeLister interface {
	ListRange(ctx context.Context, from, to time.Time) ([]service.Task, error)
}

// ListTasksHandler handles GET /v1/tasks.
type ListTasksHandler struct {
	TaskService taskRangeLister
}

func NewListTasksHandler(svc taskRangeLister) *ListTasksHandler {
	return &ListTasksHandler{TaskService: svc}
}

func (h *ListTasksHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-tasks",
		Method:      http.MethodGet,
		Path:        "/v1/tasks",
		Summary:     "List tasks in a date range",
		Description: "Returns the tasks dated between from and to, ordered by date. Used by the calendar view.",
		Tags:        []string{"Tasks"},
	}, h.handle)
}

func (h *ListTasksHandler) handle(ctx context.Context, input *ListTasksInput) (*ListTasksOutput, error) {
	from, err := params.Date("from", input.From)
	if err != nil {
		return nil, err
	}
	to, err := params.Date("to", input.To)
	if err != nil {
		return nil, err
	}

	var tasks []service.Task
	err = logging.Timed(logging.GetLogData(ctx), "listTasksMs", func() error {
		var err error
		tasks, err = h.TaskService.ListRange(ctx, from, to)
		return err
	})
	if err != nil {
		return nil, params.Error(err, "failed to list tasks")
	}
	return &ListTasksOutput{Body: ListTasksResponseBody{Tasks: fromServiceList(tasks)}}, nil
}
