package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/service"
)

type GetAccountInput struct {
	ID string `path:"id" format:"uuid" doc:"Account UUID"`
}

type GetAccountOutput struct {
	Body Account
}

type accountGetter interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/account/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	account, err := h.AccountService.GetAccount(ctx, id)
	if err != nil {
		return nil, params.Error(err, "failed to load account")
	}
	return &GetAccountOutput{Body: fromService(*account)}, nil
}
