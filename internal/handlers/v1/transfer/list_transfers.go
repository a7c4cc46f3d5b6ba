package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/service"
)

// ListTransfersInput is the Huma input for listing transfers.
type ListTransfersInput struct {
	Month  string `query:"month" pattern:"^[0-9]{4}-[0-9]{2}$" doc:"Only transfers of this month (YYYY-MM)"`
	Search string `query:"search" doc:"Case-insensitive match on description and account names"`
}

// ListTransfersResponseBody is the response body for listing transfers.
type ListTransfersResponseBody struct {
	Transfers []Transfer `json:"transfers" doc:"Matching transfers, newest first"`
	Count     int        `json:"count" doc:"Number of matching transfers"`
}

// ListTransfersOutput is the Huma output for listing transfers.
type ListTransfersOutput struct {
	Body ListTransfersResponseBody
}

// transferLister is the interface for listing transfers.
type transferLister interface {
	ListTransfers(ctx context.Context, filter service.TransferFilter) (*service.TransferList, error)
}

// ListTransfersHandler handles GET /v1/transfers.
type ListTransfersHandler struct {
	TransferService transferLister
}

// NewListTransfersHandler creates a new ListTransfersHandler.
func NewListTransfersHandler(svc transferLister) *ListTransfersHandler {
	return &ListTransfersHandler{TransferService: svc}
}

// Register registers the list transfers endpoint with the Huma API.
func (h *ListTransfersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transfers",
		Method:      http.MethodGet,
		Path:        "/v1/transfers",
		Summary:     "List transfers",
		Description: "Returns transfers filtered by month and search text, with account names resolved.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *ListTransfersHandler) handle(ctx context.Context, input *ListTransfersInput) (*ListTransfersOutput, error) {
	logData := logging.GetLogData(ctx)

	var list *service.TransferList
	err := logging.Timed(logData, "listTransfersMs", func() error {
		var err error
		list, err = h.TransferService.ListTransfers(ctx, service.TransferFilter{Month: input.Month, Search: input.Search})
		return err
	})
	if err != nil {
		return nil, params.Error(err, "failed to list transfers")
	}

	if logData != nil {
		logData.AddData("transferCount", list.Count)
	}

	resp := ListTransfersResponseBody{Transfers: make([]Transfer, len(list.Transfers)), Count: list.Count}
	for i, transfer := range list.Transfers {
		resp.Transfers[i] = fromService(transfer)
	}
	return &ListTransfersOutput{Body: resp}, nil
}
