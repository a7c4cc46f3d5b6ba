package routine

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
)

type routineDeleter interface {
	DeleteRoutine(ctx context.Context, id uuid.UUID) error
}

// DeleteRoutineHandler handles DELETE /v1/routine/{id}.
type DeleteRoutineHandler struct {
	RoutineService routineDeleter
}

func NewDeleteRoutineHandler(svc routineDeleter) *DeleteRoutineHandler {
	return &DeleteRoutineHandler{RoutineService: svc}
}

func (h *DeleteRoutineHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-routine",
		Method:      http.MethodDelete,
		Path:        "/v1/routine/{id}",
		Summary:     "Delete a routine",
		Tags:        []string{"Routines"},
	}, h.handle)
}

func (h *DeleteRoutineHandler) handle(ctx context.Context, input *RoutineIDInput) (*RoutineStatusOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.RoutineService.DeleteRoutine(ctx, id); err != nil {
		return nil, params.Error(err, "failed to delete routine")
	}
	return &RoutineStatusOutput{Status: http.StatusNoContent}, nil
}
