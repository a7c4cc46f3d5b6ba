package entry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/service"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

type UpdateEntryInput struct {
	Kind string `path:"kind" enum:"income,expense,investment" doc:"Entry kind"`
	ID   string `path:"id" format:"uuid" doc:"Entry UUID"`
	Body EntryBody
}

type UpdateEntryOutput struct {
	Status int
}

type entryUpdater interface {
	UpdateEntry(ctx context.Context, kind table.EntryKind, id uuid.UUID, input service.EntryInput) error
}

// UpdateEntryHandler handles PUT /v1/entries/{kind}/{id}.
type UpdateEntryHandler struct {
	EntryService entryUpdater
}

func NewUpdateEntryHandler(svc entryUpdater) *UpdateEntryHandler {
	return &UpdateEntryHandler{EntryService: svc}
}

func (h *UpdateEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-entry",
		Method:      http.MethodPut,
		Path:        "/v1/entries/{kind}/{id}",
		Summary:     "Update an entry",
		Description: "Replaces the entry's fields. The stored image is kept unless a new one is sent.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

func (h *UpdateEntryHandler) handle(ctx context.Context, input *UpdateEntryInput) (*UpdateEntryOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	entry, err := parseEntryBody(input.Body)
	if err != nil {
		return nil, err
	}

	err = logging.Timed(logging.GetLogData(ctx), "updateEntryMs", func() error {
		return h.EntryService.UpdateEntry(ctx, table.EntryKind(input.Kind), id, entry)
	})
	if err != nil {
		return nil, params.Error(err, "failed to update entry")
	}
	return &UpdateEntryOutput{Status: http.StatusNoContent}, nil
}
