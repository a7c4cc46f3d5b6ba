package entry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

type DeleteEntryInput struct {
	Kind string `path:"kind" enum:"income,expense,investment" doc:"Entry kind"`
	ID   string `path:"id" format:"uuid" doc:"Entry UUID"`
}

type DeleteEntryOutput struct {
	Status int
}

type entryDeleter interface {
	DeleteEntry(ctx context.Context, kind table.EntryKind, id uuid.UUID) error
}

// DeleteEntryHandler handles DELETE /v1/entries/{kind}/{id}.
type DeleteEntryHandler struct {
	EntryService entryDeleter
}

func NewDeleteEntryHandler(svc entryDeleter) *DeleteEntryHandler {
	return &DeleteEntryHandler{EntryService: svc}
}

func (h *DeleteEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-entry",
		Method:      http.MethodDelete,
		Path:        "/v1/entries/{kind}/{id}",
		Summary:     "Delete an entry",
		Description: "Reverses the entry's effect on its account and deletes it.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

func (h *DeleteEntryHandler) handle(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	err = logging.Timed(logging.GetLogData(ctx), "deleteEntryMs", func() error {
		return h.EntryService.DeleteEntry(ctx, table.EntryKind(input.Kind), id)
	})
	if err != nil {
		return nil, params.Error(err, "failed to delete entry")
	}
	return &DeleteEntryOutput{Status: http.StatusNoContent}, nil
}
