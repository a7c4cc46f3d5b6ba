package routine

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/service"
)

type ListRoutinesInput struct {
	Day string `query:"day" enum:"domingo,lunes,martes,miercoles,jueves,viernes,sabado" doc:"Only this weekday, all week when empty"`
}

type ListRoutinesResponseBody struct {
	Routines []Routine `json:"routines" doc:"Routines ordered by time"`
}

type ListRoutinesOutput struct {
	Body ListRoutinesResponseBody
}

type routineLister interface {
	ListRoutines(ctx context.Context, day string) ([]service.Routine, error)
}

// ListRoutinesHandler handles GET /v1/routines.
type ListRoutinesHandler struct {
	RoutineService routineLister
}

func NewListRoutinesHandler(svc routineLister) *ListRoutinesHandler {
	return &ListRoutinesHandler{RoutineService: svc}
}

func (h *ListRoutinesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-routines",
		Method:      http.MethodGet,
		Path:        "/v1/routines",
		Summary:     "List routines",
		Tags:        []string{"Routines"},
	}, h.handle)
}

func (h *ListRoutinesHandler) handle(ctx context.Context, input *ListRoutinesInput) (*ListRoutinesOutput, error) {
	routines, err := h.RoutineService.ListRoutines(ctx, input.Day)
	if err != nil {
		return nil, params.Error(err, "failed to list routines")
	}
	resp := ListRoutinesResponseBody{Routines: make([]Routine, len(routines))}
	for i, routine := range routines {
		resp.Routines[i] = fromService(routine)
	}
	return &ListRoutinesOutput{Body: resp}, nil
}
