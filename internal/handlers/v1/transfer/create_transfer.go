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

// CreateTransferInput is the Huma input for creating a transfer.
type CreateTransferInput struct {
	Body TransferBody
}

// CreateTransferResponse is the response body for creating a transfer.
type CreateTransferResponse struct {
	ID string `json:"id" doc:"Created transfer UUID"`
}

// CreateTransferOutput is the response for creating a transfer.
type CreateTransferOutput struct {
	Status int
	Body   CreateTransferResponse
}

// transferCreator is the interface for creating transfers.
type transferCreator interface {
	CreateTransfer(ctx context.Context, input service.TransferInput) (uuid.UUID, error)
}

// CreateTransferHandler handles POST /v1/transfer.
type CreateTransferHandler struct {
	TransferService transferCreator
}

// NewCreateTransferHandler creates a new CreateTransferHandler.
func NewCreateTransferHandler(svc transferCreator) *CreateTransferHandler {
	return &CreateTransferHandler{TransferService: svc}
}

// Register registers the create transfer endpoint with the Huma API.
func (h *CreateTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transfer",
		Method:      http.MethodPost,
		Path:        "/v1/transfer",
		Summary:     "Create a transfer",
		Description: "Moves money between two accounts. The source must hold at least the amount.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *CreateTransferHandler) handle(ctx context.Context, input *CreateTransferInput) (*CreateTransferOutput, error) {
	logData := logging.GetLogData(ctx)

	transfer, err := parseTransferBody(input.Body)
	if err != nil {
		return nil, err
	}

	var id uuid.UUID
	err = logging.Timed(logData, "createTransferMs", func() error {
		var err error
		id, err = h.TransferService.CreateTransfer(ctx, transfer)
		return err
	})
	if err != nil {
		return nil, params.Error(err, "failed to create transfer")
	}

	if logData != nil {
		logData.AddData("transferID", id.String())
	}

	return &CreateTransferOutput{
		Status: http.StatusCreated,
		Body:   CreateTransferResponse{ID: id.String()},
	}, nil
}
