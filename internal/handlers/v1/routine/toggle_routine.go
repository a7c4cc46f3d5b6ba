package routine

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
)

type RoutineIDInput struct {
	ID string `path:"id" format:"uuid" doc:"Routine UUID"`
}

type ToggleRoutineResponse struct {
	Completed bool `json:"completed" doc:"Completion after the toggle"`
}

type ToggleRoutineOutput struct {
	Body ToggleRoutineResponse
}

type routineToggler interface {
	ToggleRoutine(ctx context.Context, id uuid.UUID) (bool, error)
}

// ToggleRoutineHandler handles POST /v1/routine/{id}/toggle.
type ToggleRoutineHandler struct {
	RoutineService routineToggler
}

func NewToggleRoutineHandler(svc routineToggler) *ToggleRoutineHandler {
	return &ToggleRoutineHandler{RoutineService: svc}
}

func (h *ToggleRoutineHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "toggle-routine",
		Method:      http.MethodPost,
		Path:        "/v1/routine/{id}/toggle",
		Summary:     "Toggle routine completion",
		Tags:        []string{"Routines"},
	}, h.handle)
}

func (h *ToggleRoutineHandler) handle(ctx context.Context, input *RoutineIDInput) (*ToggleRoutineOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	completed, err := h.RoutineService.ToggleRoutine(ctx, id)
	if err != nil {
		return nil, params.Error(err, "failed to toggle routine")
	}
	return &ToggleRoutineOutput{Body: ToggleRoutineResponse{Completed: completed}}, nil
}
