package entry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/service"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

type GetEntryInput struct {
	Kind string `path:"kind" enum:"income,expense,investment" doc:"Entry kind"`
	ID   string `path:"id" format:"uuid" doc:"Entry UUID"`
}

type GetEntryOutput struct {
	Body Entry
}

type entryGetter interface {
	GetEntry(ctx context.Context, kind table.EntryKind, id uuid.UUID) (*service.Entry, error)
}

// GetEntryHandler handles GET /v1/entries/{kind}/{id}.
type GetEntryHandler struct {
	EntryService entryGetter
}

func NewGetEntryHandler(svc entryGetter) *GetEntryHandler {
	return &GetEntryHandler{EntryService: svc}
}

func (h *GetEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-entry",
		Method:      http.MethodGet,
		Path:        "/v1/entries/{kind}/{id}",
		Summary:     "Get an entry",
		Tags:        []string{"Entries"},
	}, h.handle)
}

func (h *GetEntryHandler) handle(ctx context.Context, input *GetEntryInput) (*GetEntryOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	entry, err := h.EntryService.GetEntry(ctx, table.EntryKind(input.Kind), id)
	if err != nil {
		return nil, params.Error(err, "failed to load entry")
	}
	return &GetEntryOutput{Body: fromService(*entry)}, nil
}
