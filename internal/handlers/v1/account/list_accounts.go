package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/service"
)

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct{}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts     []Account `json:"accounts" doc:"Accounts, highest balance first"`
	TotalBalance string    `json:"totalBalance" doc:"Sum of every balance"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	ListAccounts(ctx context.Context) ([]service.Account, error)
}

// ListAccountsHandler handles GET /v1/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "List accounts",
		Description: "Returns every account ordered by balance, with the total balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, _ *ListAccountsInput) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	var accounts []service.Account
	err := logging.Timed(logData, "listAccountsMs", func() error {
		var err error
		accounts, err = h.AccountService.ListAccounts(ctx)
		return err
	})
	if err != nil {
		return nil, params.Error(err, "failed to list accounts")
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	resp := ListAccountsResponseBody{Accounts: make([]Account, len(accounts))}
	var total int64
	for i, account := range accounts {
		resp.Accounts[i] = fromService(account)
		total += account.Balance
	}
	resp.TotalBalance = params.FormatAmount(total)

	return &ListAccountsOutput{Body: resp}, nil
}
