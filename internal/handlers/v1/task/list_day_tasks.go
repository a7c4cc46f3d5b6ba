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

// ListDayTasksInput is the Huma input for the tasks of one day.
type ListDayTasksInput struct {
	Date string `path:"date" format:"date" doc:"Day (YYYY-MM-DD)"`
}

type taskDayLister interface {
	ListDay(ctx context.Context, day, now time.Time) ([]service.Task, error)
}

// ListDayTasksHandler handles GET /v1/tasks/day/{date}.
type ListDayTasksHandler struct {
	TaskService taskDayLister
	Now         func() time.Time
}

func NewListDayTasksHandler(svc taskDayLister) *ListDayTasksHandler {
	return &ListDayTasksHandler{TaskService: svc, Now: time.Now}
}

func (h *ListDayTasksHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-day-tasks",
		Method:      http.MethodGet,
		Path:        "/v1/tasks/day/{date}",
		Summary:     "List the tasks of a day",
		Description: "Returns the day's tasks ordered by start time. Pending tasks already over are marked incomplete.",
		Tags:        []string{"Tasks"},
	}, h.handle)
}

func (h *ListDayTasksHandler) handle(ctx context.Context, input *ListDayTasksInput) (*ListTasksOutput, error) {
	day, err := params.Date("date", input.Date)
	if err != nil {
		return nil, err
	}

	var tasks []service.Task
	err = logging.Timed(logging.GetLogData(ctx), "listDayTasksMs", func() error {
		var err error
		tasks, err = h.TaskService.ListDay(ctx, day, h.Now())
		return err
	})
	if err != nil {
		return nil, params.Error(err, "failed to list tasks")
	}
	return &ListTasksOutput{Body: ListTasksResponseBody{Tasks: fromServiceList(tasks)}}, nil
}
