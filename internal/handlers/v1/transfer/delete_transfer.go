package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
)

type DeleteTransferInput struct {
	ID string `path:"id" format:"uuid" doc:"Transfer UUID"`
}

type DeleteTransferOutput struct {
	Status int
}

type transferDeleter interface {
	DeleteTransfer(ctx context.Context, id uuid.UUID) error
}

// DeleteTransferHandler handles DELETE /v1/transfer/{id}.
type DeleteTransferHandler struct {
	TransferService transferDeleter
}

func NewDeleteTransferHandler(svc transferDeleter) *DeleteTransferHandler {
	return &DeleteTransferHandler{TransferService: svc}
}

func (h *DeleteTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transfer",
		Method:      http.MethodDelete,
		Path:        "/v1/transfer/{id}",
		Summary:     "Delete a transfer",
		Description: "Returns the amount to the source account and deletes the transfer.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *DeleteTransferHandler) handle(ctx context.Context, input *DeleteTransferInput) (*DeleteTransferOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.TransferService.DeleteTransfer(ctx, id); err != nil {
		return nil, params.Error(err, "failed to delete transfer")
	}
	return &DeleteTransferOutput{Status: http.StatusNoContent}, nil
}
