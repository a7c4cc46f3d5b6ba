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

// CreateEntryInput is the Huma input for creating an entry.
type CreateEntryInput struct {
	Kind string `path:"kind" enum:"income,expense,investment" doc:"Entry kind"`
	Body EntryBody
}

// CreateEntryResponse is the response body for creating an entry.
type CreateEntryResponse struct {
	ID string `json:"id" doc:"Created entry UUID"`
}

// CreateEntryOutput is the response for creating an entry.
type CreateEntryOutput struct {
	Status int
	Body   CreateEntryResponse
}

// entryCreator is the interface for creating entries.
type entryCreator interface {
	CreateEntry(ctx context.Context, kind table.EntryKind, input service.EntryInput) (uuid.UUID, error)
}

// CreateEntryHandler handles POST /v1/entries/{kind}.
type CreateEntryHandler struct {
	EntryService entryCreator
}

// NewCreateEntryHandler creates a new CreateEntryHandler.
func NewCreateEntryHandler(svc entryCreator) *CreateEntryHandler {
	return &CreateEntryHandler{EntryService: svc}
}

// Register registers the create entry endpoint with the Huma API.
func (h *CreateEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-entry",
		Method:      http.MethodPost,
		Path:        "/v1/entries/{kind}",
		Summary:     "Create an entry",
		Description: "Uploads the optional image, stores the entry and applies its amount to the named account.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

func (h *CreateEntryHandler) handle(ctx context.Context, input *CreateEntryInput) (*CreateEntryOutput, error) {
	logData := logging.GetLogData(ctx)

	entry, err := parseEntryBody(input.Body)
	if err != nil {
		return nil, err
	}

	var id uuid.UUID
	err = logging.Timed(logData, "createEntryMs", func() error {
		var err error
		id, err = h.EntryService.CreateEntry(ctx, table.EntryKind(input.Kind), entry)
		return err
	})
	if err != nil {
		return nil, params.Error(err, "failed to create entry")
	}

	if logData != nil {
		logData.AddData("entryID", id.String())
		logData.AddData("entryKind", input.Kind)
	}

	return &CreateEntryOutput{
		Status: http.StatusCreated,
		Body:   CreateEntryResponse{ID: id.String()},
	}, nil
}
