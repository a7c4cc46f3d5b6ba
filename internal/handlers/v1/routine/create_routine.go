package routine

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/service"
)

type CreateRoutineInput struct {
	Body RoutineBody
}

type CreateRoutineResponse struct {
	IDs []string `json:"ids" doc:"One routine UUID per selected day"`
}

type CreateRoutineOutput struct {
	Status int
	Body   CreateRoutineResponse
}

type routineCreator interface {
	CreateRoutine(ctx context.Context, input service.RoutineInput) ([]uuid.UUID, error)
}

// CreateRoutineHandler handles POST /v1/routine.
type CreateRoutineHandler struct {
	RoutineService routineCreator
}

func NewCreateRoutineHandler(svc routineCreator) *CreateRoutineHandler {
	return &CreateRoutineHandler{RoutineService: svc}
}

func (h *CreateRoutineHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-routine",
		Method:      http.MethodPost,
		Path:        "/v1/routine",
		Summary:     "Create a routine",
		Description: "Stores one routine per selected weekday in a single transaction.",
		Tags:        []string{"Routines"},
	}, h.handle)
}

func (h *CreateRoutineHandler) handle(ctx context.Context, input *CreateRoutineInput) (*CreateRoutineOutput, error) {
	logData := logging.GetLogData(ctx)

	var ids []uuid.UUID
	err := logging.Timed(logData, "createRoutineMs", func() error {
		var err error
		ids, err = h.RoutineService.CreateRoutine(ctx, parseRoutineBody(input.Body))
		return err
	})
	if err != nil {
		return nil, params.Error(err, "failed to create routine")
	}

	resp := CreateRoutineResponse{IDs: make([]string, len(ids))}
	for i, id := range ids {
		resp.IDs[i] = id.String()
	}
	return &CreateRoutineOutput{Status: http.StatusCreated, Body: resp}, nil
}
