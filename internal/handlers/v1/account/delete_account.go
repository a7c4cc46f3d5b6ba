package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
)

type DeleteAccountInput struct {
	ID string `path:"id" format:"uuid" doc:"Account UUID"`
}

type DeleteAccountOutput struct {
	Status int
}

type accountDeleter interface {
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// DeleteAccountHandler handles DELETE /v1/account/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/v1/account/{id}",
		Summary:     "Delete an account",
		Description: "Deletes the account. Its entries and transfers are kept.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	id, err := params.ID(input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.AccountService.DeleteAccount(ctx, id); err != nil {
		return nil, params.Error(err, "failed to delete account")
	}
	return &DeleteAccountOutput{Status: http.StatusNoContent}, nil
}
