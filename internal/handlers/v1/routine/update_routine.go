package routine

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/service"
)

type UpdateRoutineInput struct {
	ID   string `path:"id" format:"uuid" doc:"Routine UUID"`
	Body RoutineBody
}

type RoutineStatusOutput struct {
	Status int
}

type routineUpdater interface {
	UpdateRoutine(ctx context.Context, id uuid.UUID, input service.RoutineInput) error
}

// UpdateRoutineHandler handles PUT /v1/routine/{id}.
type UpdateRoutineHandler struct {
	RoutineService routineUpdater
}

func NewUpdateRoutineHandler(svc routineUpdater) *UpdateRoutineHandler {
	return &UpdateRoutineHandler{RoutineService: svc}
}

func (h *UpdateRoutineHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-routine",
		Method:      http.MethodPut,
		Path:        "/v1/routine/{id}",
		Summary:     "Update a routine",
		Description: "Replaces the routine's fields and moves it to the first selected day. Completion is kept.",
		Tags:        []string{"Routines"},
	}, h.handle)
}

func (h *UpdateRoutineHandler) handle(ctx context.Context, input *UpdateRoutineInput) (*RoutineStatusOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.RoutineService.UpdateRoutine(ctx, id, parseRoutineBody(input.Body)); err != nil {
		return nil, params.Error(err, "failed to update routine")
	}
	return &RoutineStatusOutput{Status: http.StatusNoContent}, nil
}
