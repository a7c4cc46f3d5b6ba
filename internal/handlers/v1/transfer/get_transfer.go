package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/service"
)

type GetTransferInput struct {
	ID string `path:"id" format:"uuid" doc:"Transfer UUID"`
}

type GetTransferOutput struct {
	Body Transfer
}

type transferGetter interface {
	GetTransfer(ctx context.Context, id uuid.UUID) (*service.Transfer, error)
}

// GetTransferHandler handles GET /v1/transfer/{id}.
type GetTransferHandler struct {
	TransferService transferGetter
}

func NewGetTransferHandler(svc transferGetter) *GetTransferHandler {
	return &GetTransferHandler{TransferService: svc}
}

func (h *GetTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transfer",
		Method:      http.MethodGet,
		Path:        "/v1/transfer/{id}",
		Summary:     "Get a transfer",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *GetTransferHandler) handle(ctx context.Context, input *GetTransferInput) (*GetTransferOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	transfer, err := h.TransferService.GetTransfer(ctx, id)
	if err != nil {
		return nil, params.Error(err, "failed to load transfer")
	}
	return &GetTransferOutput{Body: fromService(*transfer)}, nil
}
