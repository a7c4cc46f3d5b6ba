package account

import (
	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID          string `json:"id" doc:"Account UUID"`
	Name        string `json:"name" doc:"Account name"`
	Kind        string `json:"kind" doc:"Account type, e.g. banco or efectivo"`
	Balance     string `json:"balance" doc:"Current balance as a whole number"`
	Icon        string `json:"icon,omitempty" doc:"Icon name"`
	Color       string `json:"color,omitempty" doc:"Display color"`
	Description string `json:"description,omitempty" doc:"Free text"`
}

// AccountBody is the request body for creating or updating an account.
type AccountBody struct {
	Name        string `json:"name" minLength:"1" doc:"Account name, unique"`
	Kind        string `json:"kind" minLength:"1" doc:"Account type"`
	Balance     string `json:"balance,omitempty" doc:"Balance as a whole number. Defaults to 0 on create; omitted on update keeps the current balance"`
	Icon        string `json:"icon,omitempty" doc:"Icon name"`
	Color       string `json:"color,omitempty" doc:"Display color"`
	Description string `json:"description,omitempty" doc:"Free text"`
}

func parseAccountBody(body AccountBody) (service.Account, error) {
	var balance int64
	if body.Balance != "" {
		var err error
		if balance, err = params.Integer("balance", body.Balance); err != nil {
			return service.Account{}, err
		}
	}
	return service.Account{
		Name:        body.Name,
		Kind:        body.Kind,
		Balance:     balance,
		Icon:        body.Icon,
		Color:       body.Color,
		Description: body.Description,
	}, nil
}

func fromService(account service.Account) Account {
	return Account{
		ID:          account.ID.String(),
		Name:        account.Name,
		Kind:        account.Kind,
		Balance:     params.FormatAmount(account.Balance),
		Icon:        account.Icon,
		Color:       account.Color,
		Description: account.Description,
	}
}
