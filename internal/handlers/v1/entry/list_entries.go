package entry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/service"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// ListEntriesInput is the Huma input for listing entries.
type ListEntriesInput struct {
	Kind   string `path:"kind" enum:"income,expense,investment" doc:"Entry kind"`
	Month  string `query:"month" pattern:"^[0-9]{4}-[0-9]{2}$" doc:"Only entries of this month (YYYY-MM)"`
	Search string `query:"search" doc:"Case-insensitive match on description, account or category"`
}

// ListEntriesResponseBody is the response body for listing entries.
type ListEntriesResponseBody struct {
	Entries []Entry `json:"entries" doc:"Matching entries, newest first"`
	Total   string  `json:"total" doc:"Sum of the matching amounts"`
}

// ListEntriesOutput is the Huma output for listing entries.
type ListEntriesOutput struct {
	Body ListEntriesResponseBody
}

// entryLister is the interface for listing entries.
type entryLister interface {
	ListEntries(ctx context.Context, kind table.EntryKind, filter service.EntryFilter) (*service.EntryList, error)
}

// ListEntriesHandler handles GET /v1/entries/{kind}.
type ListEntriesHandler struct {
	EntryService entryLister
}

// NewListEntriesHandler creates a new ListEntriesHandler.
func NewListEntriesHandler(svc entryLister) *ListEntriesHandler {
	return &ListEntriesHandler{EntryService: svc}
}

// Register registers the list entries endpoint with the Huma API.
func (h *ListEntriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-entries",
		Method:      http.MethodGet,
		Path:        "/v1/entries/{kind}",
		Summary:     "List entries",
		Description: "Returns the entries of one kind, filtered by month and search text, with their total.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

func (h *ListEntriesHandler) handle(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	logData := logging.GetLogData(ctx)

	var list *service.EntryList
	err := logging.Timed(logData, "listEntriesMs", func() error {
		var err error
		list, err = h.EntryService.ListEntries(ctx, table.EntryKind(input.Kind), service.EntryFilter{
			Month:  input.Month,
			Search: input.Search,
		})
		return err
	})
	if err != nil {
		return nil, params.Error(err, "failed to list entries")
	}

	if logData != nil {
		logData.AddData("entryCount", len(list.Entries))
	}

	resp := ListEntriesResponseBody{
		Entries: make([]Entry, len(list.Entries)),
		Total:   params.FormatAmount(list.Total),
	}
	for i, entry := range list.Entries {
		resp.Entries[i] = fromService(entry)
	}
	return &ListEntriesOutput{Body: resp}, nil
}
