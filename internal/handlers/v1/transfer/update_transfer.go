package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/service"
)

type UpdateTransferInput struct {
	ID   string `path:"id" format:"uuid" doc:"Transfer UUID"`
	Body TransferBody
}

type UpdateTransferOutput struct {
	Status int
}

type transferUpdater interface {
	UpdateTransfer(ctx context.Context, id uuid.UUID, input service.TransferInput) error
}

// UpdateTransferHandler handles PUT /v1/transfer/{id}.
type UpdateTransferHandler struct {
	TransferService transferUpdater
}

func NewUpdateTransferHandler(svc transferUpdater) *UpdateTransferHandler {
	return &UpdateTransferHandler{TransferService: svc}
}

func (h *UpdateTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transfer",
		Method:      http.MethodPut,
		Path:        "/v1/transfer/{id}",
		Summary:     "Update a transfer",
		Description: "Reverses the old transfer and applies the new one in a single transaction.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *UpdateTransferHandler) handle(ctx context.Context, input *UpdateTransferInput) (*UpdateTransferOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	transfer, err := parseTransferBody(input.Body)
	if err != nil {
		return nil, err
	}

	err = logging.Timed(logging.GetLogData(ctx), "updateTransferMs", func() error {
		return h.TransferService.UpdateTransfer(ctx, id, transfer)
	})
	if err != nil {
		return nil, params.Error(err, "failed to update transfer")
	}
	return &UpdateTransferOutput{Status: http.StatusNoContent}, nil
}
