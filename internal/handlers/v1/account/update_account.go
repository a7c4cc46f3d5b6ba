package account

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/service"
)

type UpdateAccountInput struct {
	ID   string `path:"id" format:"uuid" doc:"Account UUID"`
	Body AccountBody
}

type UpdateAccountOutput struct {
	Status int
}

type accountUpdater interface {
	UpdateAccount(ctx context.Context, id uuid.UUID, account service.Account, balance omit.Val[int64]) error
}

// UpdateAccountHandler handles PUT /v1/account/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPut,
		Path:        "/v1/account/{id}",
		Summary:     "Update an account",
		Description: "Replaces the account's fields. A rename is carried over to the entries booked against it. An omitted balance keeps the current one.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	account, err := parseAccountBody(input.Body)
	if err != nil {
		return nil, err
	}
	var balance omit.Val[int64]
	if input.Body.Balance != "" {
		balance = omit.From(account.Balance)
	}

	err = logging.Timed(logging.GetLogData(ctx), "updateAccountMs", func() error {
		return h.AccountService.UpdateAccount(ctx, id, account, balance)
	})
	if err != nil {
		return nil, params.Error(err, "failed to update account")
	}
	return &UpdateAccountOutput{Status: http.StatusNoContent}, nil
}
